package store

import "github.com/clementmotivates/core/internal/models"

// Built-in content used whenever the backing store has nothing for a slot.
// Clearing the backing store is a factory reset back to these values;
// messages and the media library reset to empty.

func defaultServices() []models.ServiceItem {
	return []models.ServiceItem{
		{
			ID:       "personal-branding",
			Title:    "Personal Branding Development",
			IconName: "User",
			Tagline:  "Stand out in a crowded market.",
			Problem:  "You have expertise and passion, but your online presence is inconsistent or non-existent. Opportunities are passing you by.",
			Solution: "A comprehensive branding strategy including visual identity design, tone-of-voice development, and a content roadmap.",
			Outcome:  "A clear, authoritative brand that attracts your ideal clients and establishes you as a thought leader.",
		},
		{
			ID:       "web-development",
			Title:    "Website & Digital Solutions",
			IconName: "Code",
			Tagline:  "Your digital headquarters.",
			Problem:  "Your current website is slow, outdated, or doesn't convert visitors into leads. It fails to reflect the quality of work you deliver.",
			Solution: "Custom, high-performance web development using modern technologies. Focusing on user experience (UX) and SEO.",
			Outcome:  "A professional, fast, and conversion-optimized website that works 24/7 to generate leads.",
		},
		{
			ID:       "digital-marketing",
			Title:    "Digital Marketing & Automation",
			IconName: "MonitorPlay",
			Tagline:  "Scale your reach effortlessly.",
			Problem:  "You're spending hours on manual tasks and random marketing efforts that don't yield measurable results.",
			Solution: "Implementation of marketing funnels, email automation sequences, and targeted content strategies.",
			Outcome:  "A streamlined system that brings in qualified leads consistently, freeing up your time.",
		},
		{
			ID:       "sales-consulting",
			Title:    "Sales Strategy & Growth Consulting",
			IconName: "TrendingUp",
			Tagline:  "Close more deals.",
			Problem:  "You're getting leads, but struggling to close high-ticket clients. Your sales process feels awkward or pushy.",
			Solution: "One-on-one consulting to refine your offer, pricing strategy, and sales scripts.",
			Outcome:  "Increased conversion rates, higher revenue per client, and a sales process that feels natural.",
		},
	}
}

func defaultPortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{ID: 1, Title: "TechFlow Agency", Category: "Website Development",
			Image:       "https://picsum.photos/seed/tech/600/400",
			Description: "A high-performance landing page for a SaaS marketing agency.",
			Result:      "Increased lead capture by 45% in first month."},
		{ID: 2, Title: "Sarah Jenkins Coaching", Category: "Personal Branding",
			Image:       "https://picsum.photos/seed/woman/600/400",
			Description: "Complete brand overhaul for a executive life coach.",
			Result:      "Fully booked consultation calendar within 3 weeks of launch."},
		{ID: 3, Title: "Apex Fitness App", Category: "Digital Strategy",
			Image:       "https://picsum.photos/seed/gym/600/400",
			Description: "Go-to-market strategy for a new fitness mobile application.",
			Result:      "10,000 downloads in the first quarter."},
		{ID: 4, Title: "Urban Coffee Roasters", Category: "E-Commerce",
			Image:       "https://picsum.photos/seed/coffee/600/400",
			Description: "Shopify integration and custom theme customization.",
			Result:      "Doubled online sales revenue YoY."},
		{ID: 5, Title: "Innovate Summit 2024", Category: "Event Branding",
			Image:       "https://picsum.photos/seed/event/600/400",
			Description: "Digital presence and ticketing system for a tech conference.",
			Result:      "Sold out 500 seats 2 weeks early."},
		{ID: 6, Title: "Dr. K. Mensah", Category: "Personal Branding",
			Image:       "https://picsum.photos/seed/doctor/600/400",
			Description: "Portfolio website for a medical researcher and speaker.",
			Result:      "Secured 3 international speaking gigs via contact form."},
	}
}

func defaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{ID: 1, Title: "5 Habits to Build a Powerful Personal Brand",
			Category: "Personal Branding", Date: "Oct 12, 2023",
			Image:   "https://picsum.photos/seed/blog1/600/400",
			Excerpt: "Your personal brand is what people say about you when you're not in the room. Here is how to control that narrative."},
		{ID: 2, Title: "Why Your Business Needs a Website in 2024",
			Category: "Digital Growth", Date: "Nov 05, 2023",
			Image:   "https://picsum.photos/seed/blog2/600/400",
			Excerpt: "Social media is rented land. A website is your digital real estate. Learn why ownership matters for long-term growth."},
	}
}

func defaultHeroSlides() []models.HeroSlide {
	return []models.HeroSlide{
		{ID: 1,
			Image:    "https://images.unsplash.com/photo-1544531586-fde5298cdd40?auto=format&fit=crop&q=80&w=2000",
			Title:    "Command Your Stage",
			Subtitle: "Turn your expertise into a powerful personal brand that resonates globally.",
			CTA:      "Start Your Journey", Link: "/contact", Align: models.AlignCenter},
		{ID: 2,
			Image:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&q=80&w=2000",
			Title:    "Strategic Digital Leadership",
			Subtitle: "Building robust digital solutions for visionary businesses.",
			CTA:      "View Services", Link: "/services", Align: models.AlignLeft},
		{ID: 3,
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=2000",
			Title:    "Authenticity is Power",
			Subtitle: "Crafting narratives that are true, impactful, and uniquely yours.",
			CTA:      "Explore Portfolio", Link: "/portfolio", Align: models.AlignRight},
	}
}

func defaultAboutData() models.AboutPageData {
	return models.AboutPageData{
		HeroTitle:    "Behind the Brand",
		HeroSubtitle: `"I believe that every individual has a unique purpose. My goal is to give that purpose a digital voice."`,
		HeroImage:    "/assets/clement-contact.jpg",
		IntroText: "Hello! I'm Clement. My journey began with a simple curiosity about how technology shapes human connection. Over the years, that curiosity evolved into a passion for helping others succeed.\n\n" +
			"As a developer, I build robust digital platforms. As a motivational speaker, I ignite the spark of possibility. As a consultant, I provide the roadmap to success.\n\n" +
			"I've worked with startups, established CEOs, and creative entrepreneurs to translate their vision into tangible digital assets that drive growth.",
		Stats: []models.Stat{
			{Label: "Websites Built", Value: "50+"},
			{Label: "Brands Launched", Value: "30+"},
			{Label: "Talks Given", Value: "100+"},
			{Label: "Client Satisfaction", Value: "100%"},
		},
	}
}

func defaultContactData() models.ContactPageData {
	return models.ContactPageData{
		Title:        "Let's Connect",
		Subtitle:     "Ready to start a project or need a speaker for your next event? Fill out the form below or use the direct links to get in touch.",
		Email:        "olurantiprofile@gmail.com",
		Phone:        "234-8060180077",
		WhatsApp:     "234-8060180077",
		SidebarImage: "/assets/clement-contact.jpg",
		Quote:        "The only limit to our realization of tomorrow will be our doubts of today.",
		QuoteAuthor:  "Franklin D. Roosevelt",
	}
}
