package routes

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/ArowuTest/intern-dashboard/internal/config"
	"github.com/ArowuTest/intern-dashboard/internal/handlers"
	"github.com/ArowuTest/intern-dashboard/internal/metrics"
	"github.com/ArowuTest/intern-dashboard/internal/middleware"
	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandlerDependencies groups everything the router wires together
type HandlerDependencies struct {
	InternHandler *handlers.InternHandler
	Metrics       *metrics.Metrics
	Static        fs.FS
	Logger        logrus.FieldLogger
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(deps.Metrics.Middleware())

	router.GET("/health", deps.InternHandler.Health)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/interns", deps.InternHandler.ListInterns)
		api.POST("/interns", deps.InternHandler.CreateIntern)
		api.GET("/intern/:id", deps.InternHandler.GetIntern)
		api.GET("/demo-data", deps.InternHandler.GetDemoData)
	}

	// The client page and its assets are served from the site root
	static := http.FileServer(http.FS(deps.Static))
	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(deps.Static))
	})
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Not found"})
			return
		}
		static.ServeHTTP(c.Writer, c.Request)
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
