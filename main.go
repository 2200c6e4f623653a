package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"rental-backend/config"
	"rental-backend/controllers"
	"rental-backend/routes"
	"rental-backend/services"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.Server.Mode)

	if err := config.ConnectDatabase(cfg.DB); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logrus.Info("database connection established, migrations applied")

	// Services
	propertyService := services.NewPropertyService(db)
	roomTypeService := services.NewRoomTypeService(db)
	seasonRuleService := services.NewSeasonRuleService(db)
	bookingService := services.NewBookingService(db)
	availabilityService := services.NewAvailabilityService(db)
	userService := services.NewUserService(db)

	// Controllers
	propertyController := controllers.NewPropertyController(propertyService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	seasonRuleController := controllers.NewSeasonRuleController(seasonRuleService)
	bookingController := controllers.NewBookingController(bookingService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	userController := controllers.NewUserController(userService)

	router := routes.SetupRouter(
		propertyController,
		roomTypeController,
		seasonRuleController,
		bookingController,
		availabilityController,
		userController,
		cfg.Server.CORSOrigins,
	)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
