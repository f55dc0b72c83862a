package config

import (
	"log"

	"mysterystays/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp builds the router with CORS and request ids, the websocket hub and the scheduler.
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AllowAllOrigins = true
	configCors.AddAllowHeaders(middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Printf("Warning: trusted proxies not set: %v", err)
	}
	router.Use(middleware.RequestIDMiddleware())

	m := melody.New()
	c := cron.New()

	return router, m, c
}
