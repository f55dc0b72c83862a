package routes

import (
	"mysterystays/controllers"
	_ "mysterystays/docs"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes registers the Mystery Stays API on router. m may be nil to skip /ws.
func SetupRoutes(router *gin.Engine, stays controllers.StayController, scans controllers.ScanController, m *melody.Melody) {
	router.GET("/", controllers.Home)
	router.GET("/ping", controllers.Ping)

	properties := router.Group("/properties")
	properties.POST("/add", stays.AddProperty)
	properties.GET("/match/:user_id", stays.MatchProperties)

	router.POST("/users/preferences", stays.RegisterPreferences)

	bookings := router.Group("/bookings")
	bookings.POST("/create", stays.CreateBooking)
	bookings.GET("/reveal/:booking_id", stays.RevealBooking)
	bookings.POST("/cancel/:booking_id", stays.CancelBooking)

	router.POST("/scan_airbnb", scans.ScanAirbnb)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if m != nil {
		router.GET("/ws", func(c *gin.Context) {
			m.HandleRequest(c.Writer, c.Request)
		})
	}
}
