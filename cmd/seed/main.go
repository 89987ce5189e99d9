package main

import (
	"context"
	"os"

	"github.com/ArowuTest/intern-dashboard/internal/config"
	"github.com/ArowuTest/intern-dashboard/internal/logger"
	mongorepo "github.com/ArowuTest/intern-dashboard/internal/repositories/mongodb"
	"github.com/ArowuTest/intern-dashboard/internal/services"
	"github.com/ArowuTest/intern-dashboard/pkg/mongodb"
	"github.com/joho/godotenv"
)

// Imports interns from a CSV file into MongoDB.
// Usage: seed <file.csv>
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		logger.New("info", false).Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel, false)
	if envErr != nil {
		log.Warn(".env file not found, using environment variables")
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	repo := mongorepo.NewInternRepository(client.Database(cfg.MongoDB.Database))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	file, err := os.Open(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	result, err := importInterns(ctx, services.NewInternService(repo), file, log)
	if err != nil {
		log.Fatalf("Failed to import data: %v", err)
	}

	log.Infof("Import finished: %d created, %d already present, %d skipped",
		result.Created, result.Existing, result.Skipped)
}
