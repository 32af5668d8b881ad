// File: workdate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"workdate/config"
	"workdate/handlers"
	"workdate/middleware"
	"workdate/models"
	"workdate/routes"
	"workdate/services/calendar"
	"workdate/services/holiday"
	"workdate/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	cal, err := models.NewBusinessCalendar(
		config.AppConfig.BusinessTimezone,
		config.AppConfig.BusinessOpenHour,
		config.AppConfig.BusinessLunchFrom,
		config.AppConfig.BusinessLunchTo,
		config.AppConfig.BusinessCloseHour,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business calendar: %v", err)
	}

	// Holiday cache: redis when configured, in-memory otherwise.
	ttl := time.Duration(config.AppConfig.HolidayCacheTTLMin) * time.Minute
	var holidayCache holiday.Cache
	var redisClient *redis.Client
	if config.AppConfig.RedisAddr != "" {
		utils.InitCache()
		redisClient = utils.GetCacheClient()
		holidayCache = holiday.NewRedisHolidayCache(redisClient, ttl)
	} else {
		holidayCache = holiday.NewMemoryCache(ttl)
	}

	provider := holiday.NewDefaultHolidayProvider(
		config.AppConfig.HolidaySourceURL,
		holidayCache,
		time.Duration(config.AppConfig.HolidayFetchTimeoutSec)*time.Second,
	)

	businessDateService := &calendar.DefaultBusinessDateService{
		Provider: provider,
		Calendar: cal,
	}
	businessDateHandler := handlers.NewBusinessDateHandler(businessDateService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, businessDateHandler)
	utils.StartHealthMonitor(redisClient, config.AppConfig.HolidaySourceURL)

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
