// Package routes handles the setup and configuration of API routes
package routes

import (
	"k8s-azure-app/internal/api/handlers"
	"k8s-azure-app/internal/api/middleware"
	"k8s-azure-app/internal/config"
	"k8s-azure-app/internal/sysinfo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// middlewares lists the stages every request passes through, in order.
// Each stage may set headers or abort; none rewrites a body after a handler ran.
func middlewares(cfg *config.Config, logger *zap.Logger) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(),
		middleware.BodyParser(cfg.API.BodyLimit),
	}
}

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, info *sysinfo.Provider, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.New()
	// Paths match exactly; /health/ is a 404 like any other unknown path
	r.RedirectTrailingSlash = false
	r.Use(middlewares(cfg, logger)...)

	// Initialize handlers
	welcomeHandler := handlers.NewWelcomeHandler(cfg.App.Environment)
	healthHandler := handlers.NewHealthHandler(info)
	infoHandler := handlers.NewInfoHandler(info, logger)

	r.GET("/", welcomeHandler.Welcome)
	r.HEAD("/", welcomeHandler.Welcome)
	r.GET("/health", healthHandler.Health)
	r.HEAD("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/info", infoHandler.Info)
		api.HEAD("/info", infoHandler.Info)
	}

	r.NoRoute(handlers.NotFound)

	return r
}
