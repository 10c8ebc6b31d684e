package main

import (
	"context"
	"flag"
	"log"

	"backstage-api/cmd"
	"backstage-api/internal/data/repository"
	"backstage-api/internal/wire"
	"backstage-api/pkg/database"
	"backstage-api/pkg/metrics"
	"backstage-api/pkg/storage"
	"backstage-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply database migrations and exit")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	if *migrateOnly || config.Database.AutoMigrate {
		if err := database.Migrate(ctx, config.Database.URL, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		if *migrateOnly {
			return
		}
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database, logger, config.App.Debug)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := metrics.RegisterPoolStats(db.Stat); err != nil {
		logger.Warn("Failed to register pool metrics", zap.Error(err))
	}

	logger.Info("Database connected successfully",
		zap.Int32("max_conns", config.Database.MaxConns()),
	)

	// Connect to object storage
	s3Client, err := storage.InitS3(ctx, config.Storage)
	if err != nil {
		logger.Fatal("Failed to init object storage", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, s3Client, config.Storage.Bucket, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server exited", zap.Error(err))
	}
}
