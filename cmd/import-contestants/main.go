package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/smallie-ng/smallie-web/internal/app"
	"github.com/smallie-ng/smallie-web/internal/config"
	"github.com/smallie-ng/smallie-web/internal/logging"
	"github.com/smallie-ng/smallie-web/internal/utils"
	"go.uber.org/zap"
)

// Imports a contestant roster CSV into the configured document store
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get CSV file path from command line arguments
	if len(os.Args) != 2 {
		log.Fatal("Usage: import-contestants path/to/contestants.csv")
	}
	csvFilePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Must(cfg.LogLevel, cfg.IsDebug())
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open document store", zap.Error(err))
	}
	defer store.Close()

	file, err := os.Open(csvFilePath)
	if err != nil {
		logger.Fatal("Failed to open CSV file", zap.Error(err))
	}
	defer file.Close()

	result, err := utils.NewContestantImporter(store.Contestants).Import(ctx, file)
	if err != nil {
		logger.Fatal("Failed to import contestants", zap.Error(err))
	}

	for _, msg := range result.Errors {
		logger.Warn("Skipped row", zap.String("reason", msg))
	}
	logger.Info("Contestants imported successfully",
		zap.Int("rows", result.TotalRows),
		zap.Int("imported", result.Imported),
	)
}
