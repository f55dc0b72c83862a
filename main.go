package main

import (
	"context"
	"log"

	"mysterystays/cache"
	"mysterystays/config"
	"mysterystays/controllers"
	"mysterystays/jobs"
	"mysterystays/routes"
	"mysterystays/scanner"
	"mysterystays/services"
	"mysterystays/services/logger"
	"mysterystays/services/notification"
)

// @title Mystery Stays API
// @version 1.0
// @description Discounted stays whose exact location is revealed after booking.
// @host 127.0.0.1:5001
// @BasePath /
func main() {
	config.LoadEnv()

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(config.GetEnv("LOG_LEVEL", "info")))

	router, m, c := config.InitApp()

	store, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	rdb, err := config.ConnectRedis(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}
	stayCache := cache.NewLayered(rdb, 1000, cache.DefaultLocalTTL)
	defer stayCache.Stop()

	stayService := services.NewStayService(services.StayServiceOptions{
		Store:    store,
		Cache:    stayCache,
		Logger:   appLogger,
		Notifier: notification.NewMelodyService(m),
	})
	listingScanner := scanner.NewScanner(scanner.NewFetcher(config.GetEnv("SCAN_FETCHER", "colly")), appLogger)

	if err := jobs.InitCronJobs(c, stayService, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router,
		controllers.NewStayController(stayService),
		controllers.NewScanController(listingScanner, appLogger),
		m,
	)

	port := config.GetEnv("PORT", config.DefaultPort)
	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newStore() (services.Store, error) {
	if config.GetEnv("STORAGE", "memory") != "postgres" {
		log.Println("Using in-memory storage")
		return services.NewMemoryStore(), nil
	}

	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	store := services.NewGormStore(db)
	if err := store.AutoMigrate(); err != nil {
		return nil, err
	}
	return store, nil
}
