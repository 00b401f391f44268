// main.go
package main

import (
	"context"
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/queue"
	"hotel-booking/internal/wire"
	"hotel-booking/internal/wishlist"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

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

	// Wishlists live in Redis; without it, fall back to process memory so a
	// dev machine still works end to end.
	var wishlistStore wishlist.Store
	redisClient, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, wishlists held in memory", zap.Error(err))
		wishlistStore = wishlist.NewMemoryStore()
	} else {
		defer redisClient.Close()
		logger.Info("Redis connected successfully")
		wishlistStore = wishlist.NewRedisStore(redisClient, logger)
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Payment gateway plumbing: requests go out over the queue, the worker
	// drives them to a terminal status.
	publisher := queue.NewPublisher(config.Queue.URL, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := queue.NewGatewayWorker(config.Queue.URL, repos, logger)
	go worker.Run(ctx)

	// Wire all dependencies
	app := wire.Wiring(repos, wishlistStore, publisher, config, logger)

	// Serves until SIGINT/SIGTERM; the deferred cancel stops the worker once
	// the last request has drained
	cmd.APIServer(app.Router, config.App.Port, logger)
}
