package main

import (
	"log"
	"time"

	"mysterystays/client"
	"mysterystays/config"
	"mysterystays/demo"
	"mysterystays/forms"
	"mysterystays/services/logger"
	"mysterystays/web"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(config.GetEnv("LOG_LEVEL", "info")))
	backendURL := config.GetEnv("BACKEND_URL", config.DefaultBackendURL)
	backend := client.New(backendURL, client.WithLogger(appLogger))

	orchestrator := demo.NewOrchestrator(backend, demo.NewRandomGenerator(time.Now().UnixNano()))
	orchestrator.Logger = appLogger

	console := web.NewConsole(web.ConsoleOptions{
		BackendURL: backendURL,
		Dispatcher: forms.NewDispatcher(backend),
		Runner:     orchestrator,
		Logger:     appLogger,
	})

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Printf("Warning: trusted proxies not set: %v", err)
	}
	console.Register(router)

	port := config.GetEnv("WEB_PORT", config.DefaultWebPort)
	log.Println("Console starting on port " + port + ", backend " + backendURL)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start console: %v", err)
	}
}
