// File: homebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homebook/config"
	"homebook/cron"
	"homebook/database"
	bookingRepo "homebook/database/repository/booking"
	scheduleRepo "homebook/database/repository/schedule"
	"homebook/handlers"
	"homebook/middleware"
	"homebook/routes"
	"homebook/services/booking"
	slotCache "homebook/services/cache"
	"homebook/services/schedule"
	"homebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database.InitDB()
	utils.InitCache()

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	if err := schedRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to ensure schedule indexes", zap.Error(err))
	}
	if err := bookRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to ensure booking indexes", zap.Error(err))
	}

	cache := slotCache.NewRedisSlotCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SlotCacheTTLSeconds)*time.Second,
	)

	// reminders.
	var reminders booking.ReminderScheduler
	if config.AppConfig.RemindersEnabled {
		asynqClient := asynq.NewClient(cron.QueueRedisOpt())
		defer asynqClient.Close()
		reminders = asynqClient
		cron.InitReminderWorker(ctx, cron.LogNotifier{Logger: logger.Named("reminders")}, logger.Named("reminder-worker"))
	}

	// services.
	granularity := config.AppConfig.SlotGranularityMinutes
	scheduleService := &schedule.DefaultScheduleService{
		Repo:        schedRepo,
		Bookings:    bookRepo,
		Cache:       cache,
		Granularity: granularity,
		Logger:      logger.Named("schedule"),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookRepo,
		Schedules:    scheduleService,
		Cache:        cache,
		Reminders:    reminders,
		Granularity:  granularity,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		Logger:       logger.Named("booking"),
	}

	utils.StartHealthMonitor(ctx, []*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(scheduleService, bookingService))

	// Start the HTTP server.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("main: starting server", zap.String("addr", srv.Addr), zap.String("env", config.GetEnv()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}
	if err := utils.GetCacheClient().Close(); err != nil {
		logger.Error("main: failed to close Redis", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
