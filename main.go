// File: handyhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"handyhub/config"
	"handyhub/cron"
	"handyhub/database"
	bookingRepoPkg "handyhub/database/repository/booking"
	reviewRepoPkg "handyhub/database/repository/review"
	serviceRepoPkg "handyhub/database/repository/service"
	"handyhub/handlers"
	"handyhub/routes"
	"handyhub/services/booking"
	"handyhub/services/notification"
	"handyhub/services/review"
	"handyhub/services/tasks"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	notificationService := notification.NewDefaultNotificationService()
	reminderScheduler := tasks.NewScheduler()

	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		ServiceRepo: serviceRepo,
		ReviewRepo:  reviewRepo,
		Notifier:    notificationService,
		Reminders:   reminderScheduler,
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: &handlers.BookingHandler{Svc: bookingService},
		Review:  &handlers.ReviewHandler{Svc: reviewService},
		Service: &handlers.ServiceHandler{Repo: serviceRepo, Cache: utils.GetCacheClient()},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
