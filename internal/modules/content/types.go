package content

import "github.com/clementmotivates/core/internal/models"

// serviceDTO is the write shape for catalog entries. The slug id is
// caller-assigned and required on create.
type serviceDTO struct {
	ID       string `json:"id"       binding:"required"`
	Title    string `json:"title"    binding:"required"`
	IconName string `json:"iconName"`
	Tagline  string `json:"tagline"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Outcome  string `json:"outcome"`
}

func (d serviceDTO) toModel() models.ServiceItem {
	return models.ServiceItem{
		ID:       d.ID,
		Title:    d.Title,
		IconName: d.IconName,
		Tagline:  d.Tagline,
		Problem:  d.Problem,
		Solution: d.Solution,
		Outcome:  d.Outcome,
	}
}

// portfolioDTO carries no id; ids come from the path on update and the
// store on create.
type portfolioDTO struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Result      string `json:"result"`
}

func (d portfolioDTO) toModel(id int64) models.PortfolioItem {
	return models.PortfolioItem{
		ID:          id,
		Title:       d.Title,
		Category:    d.Category,
		Image:       d.Image,
		Description: d.Description,
		Result:      d.Result,
	}
}

type blogPostDTO struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Excerpt  string `json:"excerpt"`
}

func (d blogPostDTO) toModel(id int64) models.BlogPost {
	return models.BlogPost{
		ID:       id,
		Title:    d.Title,
		Category: d.Category,
		Date:     d.Date,
		Image:    d.Image,
		Excerpt:  d.Excerpt,
	}
}

type heroSlideDTO struct {
	Image    string `json:"image"    binding:"required"`
	Title    string `json:"title"    binding:"required"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
	Link     string `json:"link"`
	Align    string `json:"align"    binding:"required,oneof=left center right"`
}

func (d heroSlideDTO) toModel(id int64) models.HeroSlide {
	return models.HeroSlide{
		ID:       id,
		Image:    d.Image,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		CTA:      d.CTA,
		Link:     d.Link,
		Align:    models.SlideAlign(d.Align),
	}
}
