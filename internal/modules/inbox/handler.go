// Package inbox handles the public contact form and the admin message
// inbox. An accepted inquiry is stored first, then forwarded to the
// external form service in the background.
package inbox

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clementmotivates/core/internal/pkg/kv"
	"github.com/clementmotivates/core/internal/pkg/response"
	"github.com/clementmotivates/core/internal/store"
)

type submitDTO struct {
	Name            string `json:"name"            binding:"required"`
	Email           string `json:"email"           binding:"required,email"`
	ServiceInterest string `json:"serviceInterest" binding:"required"`
	Message         string `json:"message"         binding:"required"`
}

type Handler struct {
	store     *store.Store
	forwarder *Forwarder
	phone     string
}

func NewHandler(st *store.Store, fwd *Forwarder, phone string) *Handler {
	return &Handler{store: st, forwarder: fwd, phone: phone}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/messages", h.submit)
	admin.GET("/messages", h.list)
	admin.PATCH("/messages/:id/read", h.markRead)
}

// POST /messages
func (h *Handler) submit(c *gin.Context) {
	var dto submitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.store.AddMessage(c.Request.Context(), dto.Name, dto.Email, dto.ServiceInterest, dto.Message)
	if err != nil {
		if errors.Is(err, kv.ErrQuotaExceeded) {
			response.UnprocessableEntity(c, "inbox exceeds the storage quota")
			return
		}
		response.InternalError(c, err)
		return
	}
	h.forwarder.Forward(m)
	response.Created(c, gin.H{
		"message":     m,
		"whatsappUrl": WhatsAppLink(h.phone, m),
	})
}

// GET /messages (admin)
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.store.Messages())
}

// PATCH /messages/:id/read (admin)
func (h *Handler) markRead(c *gin.Context) {
	found, err := h.store.MarkMessageRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "message not found")
		return
	}
	response.NoContent(c)
}
