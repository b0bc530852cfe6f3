// Package content serves the site collections and page singletons. Reads
// are public; every mutation sits behind the admin guard.
package content

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clementmotivates/core/internal/models"
	"github.com/clementmotivates/core/internal/pkg/kv"
	"github.com/clementmotivates/core/internal/pkg/response"
	"github.com/clementmotivates/core/internal/store"
)

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler { return &Handler{store: st} }

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/services", h.listServices)
	public.GET("/portfolio", h.listPortfolio)
	public.GET("/posts", h.listPosts)
	public.GET("/slides", h.listSlides)
	public.GET("/pages/about", h.aboutPage)
	public.GET("/pages/contact", h.contactPage)

	admin.POST("/services", h.createService)
	admin.PUT("/services/:id", h.updateService)
	admin.DELETE("/services/:id", h.deleteService)

	admin.POST("/portfolio", h.createPortfolio)
	admin.PUT("/portfolio/:id", h.updatePortfolio)
	admin.DELETE("/portfolio/:id", h.deletePortfolio)

	admin.POST("/posts", h.createPost)
	admin.PUT("/posts/:id", h.updatePost)
	admin.DELETE("/posts/:id", h.deletePost)

	admin.POST("/slides", h.createSlide)
	admin.PUT("/slides/:id", h.updateSlide)
	admin.DELETE("/slides/:id", h.deleteSlide)

	admin.PUT("/pages/about", h.updateAbout)
	admin.PUT("/pages/contact", h.updateContact)
}

// writeError maps store failures onto the response envelope.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, kv.ErrQuotaExceeded) {
		response.UnprocessableEntity(c, "content exceeds the storage quota")
		return
	}
	response.InternalError(c, err)
}

func numericID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id must be numeric")
		return 0, false
	}
	return id, true
}

// ---- public reads ----

func (h *Handler) listServices(c *gin.Context)  { response.OK(c, h.store.Services()) }
func (h *Handler) listPortfolio(c *gin.Context) { response.OK(c, h.store.Portfolio()) }
func (h *Handler) listPosts(c *gin.Context)     { response.OK(c, h.store.BlogPosts()) }
func (h *Handler) listSlides(c *gin.Context)    { response.OK(c, h.store.HeroSlides()) }
func (h *Handler) aboutPage(c *gin.Context)     { response.OK(c, h.store.About()) }
func (h *Handler) contactPage(c *gin.Context)   { response.OK(c, h.store.Contact()) }

// ---- services ----

func (h *Handler) createService(c *gin.Context) {
	var dto serviceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item := dto.toModel()
	if err := h.store.AddService(c.Request.Context(), item); err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, item)
}

func (h *Handler) updateService(c *gin.Context) {
	var dto serviceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item := dto.toModel()
	item.ID = c.Param("id")
	found, err := h.store.UpdateService(c.Request.Context(), item)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "service not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) deleteService(c *gin.Context) {
	found, err := h.store.DeleteService(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "service not found")
		return
	}
	response.NoContent(c)
}

// ---- portfolio ----

func (h *Handler) createPortfolio(c *gin.Context) {
	var dto portfolioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.store.AddPortfolio(c.Request.Context(), dto.toModel(0))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, item)
}

func (h *Handler) updatePortfolio(c *gin.Context) {
	id, ok := numericID(c)
	if !ok {
		return
	}
	var dto portfolioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item := dto.toModel(id)
	found, err := h.store.UpdatePortfolio(c.Request.Context(), item)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "portfolio item not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) deletePortfolio(c *gin.Context) {
	id, ok := numericID(c)
	if !ok {
		return
	}
	found, err := h.store.DeletePortfolio(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "portfolio item not found")
		return
	}
	response.NoContent(c)
}

// ---- blog posts ----

func (h *Handler) createPost(c *gin.Context) {
	var dto blogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.store.AddBlogPost(c.Request.Context(), dto.toModel(0))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, post)
}

func (h *Handler) updatePost(c *gin.Context) {
	id, ok := numericID(c)
	if !ok {
		return
	}
	var dto blogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post := dto.toModel(id)
	found, err := h.store.UpdateBlogPost(c.Request.Context(), post)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := numericID(c)
	if !ok {
		return
	}
	found, err := h.store.DeleteBlogPost(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.NoContent(c)
}

// ---- hero slides ----

func (h *Handler) createSlide(c *gin.Context) {
	var dto heroSlideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	slide, err := h.store.AddHeroSlide(c.Request.Context(), dto.toModel(0))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, slide)
}

func (h *Handler) updateSlide(c *gin.Context) {
	id, ok := numericID(c)
	if !ok {
		return
	}
	var dto heroSlideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	slide := dto.toModel(id)
	found, err := h.store.UpdateHeroSlide(c.Request.Context(), slide)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "slide not found")
		return
	}
	response.OK(c, slide)
}

func (h *Handler) deleteSlide(c *gin.Context) {
	id, ok := numericID(c)
	if !ok {
		return
	}
	found, err := h.store.DeleteHeroSlide(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "slide not found")
		return
	}
	response.NoContent(c)
}

// ---- page singletons ----

func (h *Handler) updateAbout(c *gin.Context) {
	var data models.AboutPageData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.store.ReplaceAbout(c.Request.Context(), data); err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, data)
}

func (h *Handler) updateContact(c *gin.Context) {
	var data models.ContactPageData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.store.ReplaceContact(c.Request.Context(), data); err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, data)
}
