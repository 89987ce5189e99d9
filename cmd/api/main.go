package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/intern-dashboard/api/routes"
	"github.com/ArowuTest/intern-dashboard/internal/config"
	"github.com/ArowuTest/intern-dashboard/internal/handlers"
	"github.com/ArowuTest/intern-dashboard/internal/logger"
	"github.com/ArowuTest/intern-dashboard/internal/metrics"
	"github.com/ArowuTest/intern-dashboard/internal/repositories"
	"github.com/ArowuTest/intern-dashboard/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/intern-dashboard/internal/repositories/mongodb"
	"github.com/ArowuTest/intern-dashboard/internal/services"
	mongodb "github.com/ArowuTest/intern-dashboard/pkg/mongodb"
	"github.com/ArowuTest/intern-dashboard/web"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	log := logger.New(cfg.LogLevel, cfg.Server.Mode == gin.ReleaseMode)
	if envErr != nil {
		log.Debug(".env file not found, using environment variables")
	}

	ctx := context.Background()

	var internRepo repositories.InternRepository
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		internRepo = memory.NewInternRepository()
	default:
		mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Errorf("Error disconnecting from MongoDB: %v", err)
			}
		}()
		log.WithField("database", cfg.MongoDB.Database).Info("Connected to MongoDB")

		internRepo = mongorepo.NewInternRepository(mongoClient.Database(cfg.MongoDB.Database))
	}

	// The unique indexes are the source of truth for email uniqueness
	if err := internRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	m := metrics.New()
	internService := services.NewInternService(internRepo)
	internHandler := handlers.NewInternHandler(internService, m, log)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		InternHandler: internHandler,
		Metrics:       m,
		Static:        web.FS(),
		Logger:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server running on port %s", cfg.Server.Port)
		log.Infof("Visit http://localhost:%s to view the dashboard", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server exiting")
}
