// Package app wires configuration, storage, the content store, and the
// session gate into a running HTTP service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clementmotivates/core/internal/config"
	"github.com/clementmotivates/core/internal/middleware"
	"github.com/clementmotivates/core/internal/pkg/jwt"
	"github.com/clementmotivates/core/internal/pkg/kv"
	"github.com/clementmotivates/core/internal/session"
	"github.com/clementmotivates/core/internal/store"
)

// App holds all application dependencies.
type App struct {
	cfg     *config.AppConfig
	router  *gin.Engine
	backing kv.Store
	content *store.Store
	gate    *session.Gate
	logger  *zap.Logger
}

// New initializes the application: config → backing store → content
// store → session gate → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.JWTSecret != "" {
		jwt.SetSecret(cfg.JWTSecret)
	} else {
		logger.Warn("jwt_secret not configured, using the built-in development secret")
	}

	backing, err := openBacking(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	ctx := context.Background()
	content, err := store.New(ctx, backing, logger, store.WithMediaLimit(cfg.Media.MaxEncodedBytes))
	if err != nil {
		backing.Close()
		return nil, fmt.Errorf("content store: %w", err)
	}

	gate, err := session.New(ctx, backing, verifierFor(cfg.Admin), logger)
	if err != nil {
		backing.Close()
		return nil, fmt.Errorf("session gate: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{
		cfg:     cfg,
		router:  router,
		backing: backing,
		content: content,
		gate:    gate,
		logger:  logger,
	}
	app.registerRoutes()

	return app, nil
}

func openBacking(cfg *config.AppConfig) (kv.Store, error) {
	st := cfg.Storage
	switch st.Driver {
	case "sqlite":
		return kv.NewSQLite(st.Path, st.MaxValueBytes)
	case "redis":
		return kv.NewRedis(st.RedisURL, st.Prefix, st.MaxValueBytes)
	case "memory":
		return kv.NewMemory(st.MaxValueBytes), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", st.Driver)
	}
}

func verifierFor(admin config.AdminConfig) session.CredentialVerifier {
	if admin.PasswordHash != "" {
		return session.BcryptCredentials{Identifier: admin.Email, Hash: admin.PasswordHash}
	}
	return session.StaticCredentials{Identifier: admin.Email, Secret: admin.Password}
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the backing store.
func (a *App) Shutdown() {
	if err := a.backing.Close(); err != nil {
		a.logger.Warn("closing backing store", zap.Error(err))
	}
}
