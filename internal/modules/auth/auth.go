// Package auth exposes the login/logout surface over the session gate.
package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clementmotivates/core/internal/pkg/jwt"
	"github.com/clementmotivates/core/internal/pkg/response"
	"github.com/clementmotivates/core/internal/session"
)

// tokenTTL is how long an issued admin token stays valid. Logout cuts it
// short regardless.
const tokenTTL = 7 * 24 * time.Hour

type loginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	gate *session.Gate
}

func NewHandler(gate *session.Gate) *Handler { return &Handler{gate: gate} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.login)
	g.GET("/status", h.status)
	g.POST("/logout", authMW, h.logout)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !h.gate.Login(c.Request.Context(), dto.Email, dto.Password) {
		response.UnauthorizedMsg(c, "invalid email or password")
		return
	}
	token, err := jwt.Sign(dto.Email, tokenTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "authenticated": true})
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// GET /auth/status
func (h *Handler) status(c *gin.Context) {
	response.OK(c, gin.H{"authenticated": h.gate.IsAuthenticated()})
}
