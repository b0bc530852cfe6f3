// Package media serves the admin media library. Uploads are inlined as
// data URLs, so the library is self-contained in the backing store.
package media

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clementmotivates/core/internal/pkg/kv"
	"github.com/clementmotivates/core/internal/pkg/response"
	"github.com/clementmotivates/core/internal/store"
)

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler { return &Handler{store: st} }

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/media", h.list)
	admin.POST("/media", h.upload)
	admin.DELETE("/media/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.store.Media())
}

// POST /media expects a multipart form with a single "file" part.
func (h *Handler) upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "a file part named \"file\" is required")
		return
	}
	f, err := header.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	item, err := h.store.AddMedia(c.Request.Context(), f, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMediaTooLarge):
			response.UnprocessableEntity(c, "file is too large for inline storage, host it externally and add the URL instead")
		case errors.Is(err, store.ErrMediaRead):
			response.BadRequest(c, "upload could not be read")
		case errors.Is(err, kv.ErrQuotaExceeded):
			response.UnprocessableEntity(c, "media library exceeds the storage quota")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, item)
}

func (h *Handler) remove(c *gin.Context) {
	found, err := h.store.DeleteMedia(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "media item not found")
		return
	}
	response.NoContent(c)
}
