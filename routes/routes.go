package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
)

// SetupRouter wires controllers into the gin engine.
func SetupRouter(
	ptc *controllers.PropertyController,
	rtc *controllers.RoomTypeController,
	src *controllers.SeasonRuleController,
	bc *controllers.BookingController,
	avc *controllers.AvailabilityController,
	uc *controllers.UserController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", ptc.GetProperties)
			properties.GET("/:id", ptc.GetProperty)
			properties.POST("", ptc.CreateProperty)
			properties.DELETE("/:id", ptc.DeleteProperty)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PUT("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)

			roomTypes.GET("/:id/season-rules", src.List)
			roomTypes.POST("/:id/season-rules", src.Apply)
			roomTypes.POST("/:id/season-rules/bulk-delete", src.BulkDelete)
			roomTypes.GET("/:id/season-rules/history", src.History)

			roomTypes.GET("/:id/reservations", bc.GetReservations)
			roomTypes.POST("/:id/quote", bc.Quote)
			roomTypes.GET("/:id/availability", avc.Calendar)
		}

		api.DELETE("/season-rules/:id", src.Delete)

		transactions := api.Group("/transactions")
		{
			transactions.GET("", bc.GetTransactions)
			transactions.POST("", bc.CreateTransaction)
			transactions.GET("/:ref", bc.GetTransaction)
			transactions.PATCH("/:ref/status", bc.UpdateTransactionStatus)
		}

		api.POST("/users", uc.CreateUser)
	}

	return r
}
