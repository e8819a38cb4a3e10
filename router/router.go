package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"web3dir/handlers"
	"web3dir/middleware"
)

type Deps struct {
	Store          handlers.Store
	AllowedOrigins []string
}

// New assembles the HTTP surface: the three read-only API endpoints and
// /metrics.
func New(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(deps.AllowedOrigins)))
	r.Use(middleware.ReadOnly("/api/"))

	api := r.Group("/api")
	api.GET("/projects", handlers.ListProjects(deps.Store))
	api.GET("/tags", handlers.ListTags(deps.Store))
	api.GET("/health", handlers.HealthCheck(deps.Store))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
