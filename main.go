// File: inkstudio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkstudio/config"
	"inkstudio/cron"
	"inkstudio/database"
	artistRepoPkg "inkstudio/database/repository/artist"
	bookingRepoPkg "inkstudio/database/repository/booking"
	clientRepoPkg "inkstudio/database/repository/client"
	"inkstudio/handlers"
	"inkstudio/routes"
	bookingSvc "inkstudio/services/booking"
	"inkstudio/services/notification"
	"inkstudio/services/payment"
	"inkstudio/services/scheduling"
	"inkstudio/services/wizard"
	"inkstudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDraftCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	artistRepo := artistRepoPkg.NewMongoArtistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()

	// services.
	resolver := scheduling.NewResolver(artistRepo, bookingRepo, config.AppConfig.SlotIntervalMinutes)
	wizardService := wizard.NewService(wizard.NewRedisDraftStore(utils.GetDraftCacheClient()))

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	notificationService := notification.NewLogNotifier()
	paymentService := payment.NewStripeService(
		config.AppConfig.StripeKey,
		config.AppConfig.StripeWebhookSecret,
		bookingRepo,
	)

	bookingService := &bookingSvc.Service{
		Resolver:  resolver,
		Bookings:  bookingRepo,
		Clients:   clientRepo,
		Drafts:    wizardService.Drafts,
		Lock:      bookingSvc.NewSlotLock(utils.GetLockCacheClient()),
		Reminders: notification.NewReminderQueue(asynqClient),
		Payments:  paymentService,
	}

	// handlers.
	handlers.AvailabilityResolver = resolver
	handlers.ArtistRepo = artistRepo
	handlers.WizardService = wizardService
	handlers.BookingService = bookingService
	handlers.PaymentService = paymentService

	// Reminder worker consuming the asynq queue.
	cron.InitReminderWorker(notificationService)

	routes.RegisterRoutes(router)

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
