// File: tablero/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablero/config"
	"tablero/cron"
	"tablero/handlers"
	"tablero/middleware"
	"tablero/realtime"
	"tablero/routes"
	"tablero/services/availability"
	"tablero/services/notify"
	"tablero/services/platform"
	"tablero/services/timeline"
	"tablero/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Platform RPC layer (schedules, availability, reservation feed).
	rpcClient := platform.NewHTTPClient(
		config.AppConfig.PlatformBaseURL,
		time.Duration(config.AppConfig.PlatformTimeoutSeconds)*time.Second,
	)
	scheduleSource := &platform.CachedScheduleSource{
		Client: rpcClient,
		Redis:  utils.GetCacheClient(),
		TTL:    time.Duration(config.AppConfig.ScheduleCacheTTLSec) * time.Second,
		Logger: logger,
	}

	notifier := &notify.LogNotifier{Logger: logger}

	// services.
	availabilityResolver := availability.NewResolver(rpcClient, notifier, logger)
	timelineController := timeline.NewController(scheduleSource, rpcClient, notifier, logger, timeline.Config{
		StepMinutes:            config.AppConfig.TimelineStepMinutes,
		DefaultDurationMinutes: config.AppConfig.DefaultDiningMinutes,
		TurnLookaheadMinutes:   config.AppConfig.TurnLookaheadMinutes,
	})

	// Refresh pipeline: change cues -> asynq tasks -> full reloads.
	cron.InitRefreshWorker(timelineController)
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()

	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()
	bridge := realtime.NewBridge(utils.GetCacheClient(), taskClient, config.AppConfig.ChangeChannel, logger)
	go bridge.Run(bridgeCtx)

	// handlers.
	slotHandler := handlers.NewSlotPickerHandler(scheduleSource, config.AppConfig.SlotStepMinutes)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityResolver)
	timelineHandler := handlers.NewTimelineHandler(timelineController)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetSlotsHandler: slotHandler.GetSlotsHandler,

		CheckAvailabilityHandler:  availabilityHandler.CheckAvailabilityHandler,
		LatestAvailabilityHandler: availabilityHandler.LatestAvailabilityHandler,

		GetTimelineHandler:     timelineHandler.GetTimelineHandler,
		RefreshTimelineHandler: timelineHandler.RefreshTimelineHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	stopBridge()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
