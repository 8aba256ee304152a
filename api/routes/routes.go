package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/smallie-ng/smallie-web/internal/config"
	"github.com/smallie-ng/smallie-web/internal/handlers"
	"github.com/smallie-ng/smallie-web/internal/middleware"
	"github.com/smallie-ng/smallie-web/internal/templates"
	"github.com/smallie-ng/smallie-web/pkg/session"
	"go.uber.org/zap"
)

// HandlerDependencies holds the handlers and shared components the router mounts
type HandlerDependencies struct {
	PageHandler   *handlers.PageHandler
	HealthHandler *handlers.HealthHandler
	Sessions      *session.Manager
	Logger        *zap.Logger
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	if cfg.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates.Pages())

	// Add middleware
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.SessionMiddleware(deps.Sessions, deps.Logger))

	// Pages
	router.GET("/", deps.PageHandler.Home)
	router.GET("/admin",
		middleware.AdminAuthMiddleware(cfg.Admin.Username, cfg.Admin.PasswordHash, deps.Logger),
		deps.PageHandler.Admin,
	)

	// API routes
	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.Server.AllowedHosts))
	{
		api.GET("/health", deps.HealthHandler.Check)
	}

	if dir := cfg.Server.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			router.Static("/static", dir)
		} else {
			deps.Logger.Debug("Static directory not found, skipping", zap.String("dir", dir))
		}
	}

	return router
}
