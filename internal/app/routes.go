package app

import (
	"github.com/gin-gonic/gin"

	"github.com/clementmotivates/core/internal/middleware"
	"github.com/clementmotivates/core/internal/modules/auth"
	"github.com/clementmotivates/core/internal/modules/content"
	"github.com/clementmotivates/core/internal/modules/inbox"
	"github.com/clementmotivates/core/internal/modules/media"
	"github.com/clementmotivates/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth(a.gate)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "clement-motivates-core",
		"version":  "1.0.0",
		"homepage": "https://clementmotivates.com",
	}
	r.GET("/", func(c *gin.Context) {
		response.OK(c, appInfo)
	})

	api := r.Group("/api/v1")
	admin := api.Group("/admin", authMW)

	auth.NewHandler(a.gate).RegisterRoutes(api, authMW)
	content.NewHandler(a.content).RegisterRoutes(api, admin)

	forwarder := inbox.NewForwarder(a.cfg.Forward.Endpoint, a.logger)
	inbox.NewHandler(a.content, forwarder, a.cfg.WhatsApp.Phone).RegisterRoutes(api, admin)

	media.NewHandler(a.content).RegisterRoutes(admin)
}
