package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine/frontend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(NewTemplates())

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	router.GET("/health", handler.HealthCheck)
	router.GET("/static/vitrine.css", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(stylesheet))
	})

	// Pages
	router.GET("/", handler.Home)
	router.GET("/arvore", handler.Tree)
	router.GET("/buscar", handler.Search)
	router.GET("/ir", handler.Navigate)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/tree", handler.TreeJSON)
		v1.GET("/recommendations", handler.Recommendations)
	}

	return router
}
