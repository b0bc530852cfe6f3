package models

// ServiceItem is one entry of the service catalog. The id is a
// caller-assigned slug and is never regenerated by the store.
type ServiceItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IconName string `json:"iconName"`
	Tagline  string `json:"tagline"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Outcome  string `json:"outcome"`
}

// PortfolioItem is a case-study card. ID is store-assigned.
type PortfolioItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Result      string `json:"result"`
}

// BlogPost is a blog teaser. Date is a display string, never parsed.
type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Excerpt  string `json:"excerpt"`
}

// SlideAlign is the text alignment of a hero slide.
type SlideAlign string

const (
	AlignLeft   SlideAlign = "left"
	AlignCenter SlideAlign = "center"
	AlignRight  SlideAlign = "right"
)

// Valid reports whether the alignment is one of the three allowed values.
func (a SlideAlign) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// HeroSlide is one slide of the home-page carousel. Display order follows
// slice order; new slides append to the end.
type HeroSlide struct {
	ID       int64      `json:"id"`
	Image    string     `json:"image"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	CTA      string     `json:"cta"`
	Link     string     `json:"link"`
	Align    SlideAlign `json:"align"`
}

// ContactMessage is an inbound inquiry. The list is append-only and kept
// newest-first; Read is the only mutable field and never goes back to false.
type ContactMessage struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
	Date            string `json:"date"`
	Read            bool   `json:"read"`
}

// Stat is a label/value pair shown on the about page.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AboutPageData is the about-page singleton, replaced as a whole on save.
// IntroText holds paragraphs separated by blank lines.
type AboutPageData struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImage    string `json:"heroImage"`
	IntroText    string `json:"introText"`
	Stats        []Stat `json:"stats"`
}

// ContactPageData is the contact-page singleton, replaced as a whole on save.
type ContactPageData struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	SidebarImage string `json:"sidebarImage"`
	Quote        string `json:"quote"`
	QuoteAuthor  string `json:"quoteAuthor"`
}

// MediaType classifies a media-library entry.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaDocument MediaType = "document"
)

// MediaItem is a media-library entry. URL is either an external URL or a
// self-contained data URL produced by the upload path.
type MediaItem struct {
	ID   string    `json:"id"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
	Date string    `json:"date"`
	Type MediaType `json:"type"`
}
