// main.go
package main

import (
	"context"
	"log"
	"time"

	"venue-booking/cmd"
	"venue-booking/internal/data/cache"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/wire"
	"venue-booking/pkg/database"
	"venue-booking/pkg/mailer"
	"venue-booking/pkg/utils"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Catalog cache is optional; the catalog falls back to the database
	var catalogCache cache.CatalogCache
	redisClient, err := database.NewRedisClient(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		catalogCache = cache.NewCatalogCache(redisClient, time.Duration(config.Redis.TTLSeconds)*time.Second, logger)
		logger.Info("Redis connected successfully")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Mail notifications
	mail := mailer.NewMailer(config.Email, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, catalogCache, mail, config, logger)

	// Periodic sweep moves past approved bookings to completed
	if config.Sweep.Enabled {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			logger.Fatal("Failed to create scheduler", zap.Error(err))
		}
		defer scheduler.Shutdown()

		_, err = scheduler.NewJob(
			gocron.DurationJob(time.Duration(config.Sweep.IntervalHours)*time.Hour),
			gocron.NewTask(func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				defer cancel()

				if _, err := app.Service.Sweep.CompletePastEvents(ctx); err != nil {
					logger.Error("Completion sweep failed", zap.Error(err))
				}
			}),
		)
		if err != nil {
			logger.Fatal("Failed to schedule completion sweep", zap.Error(err))
		}

		scheduler.Start()
		logger.Info("Completion sweep scheduled", zap.Int("interval_hours", config.Sweep.IntervalHours))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
