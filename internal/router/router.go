package router

import (
	"github.com/gin-gonic/gin"

	"sugang/internal/config"
	"sugang/internal/handler"
	"sugang/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	courseH *handler.CourseHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	courses := v1.Group("/courses")
	courses.GET("", courseH.List)
	courses.GET("/export", courseH.Export)
	courses.GET("/:id", courseH.GetByID)

	return r
}
