package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/itinerary"
	"voyago/services/places"
	"voyago/services/trip"
	"voyago/services/weather"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	cacheClient := utils.GetCacheClient()
	utils.StartHealthMonitor(cacheClient)

	// Candidate source: Gemini behind a redis cache.
	geminiSource, err := places.NewGeminiSource(config.AppConfig.GeminiAPIKey, config.AppConfig.CandidateCount)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini candidate source: %v", err)
	}
	placeSource := &places.CachedSource{
		Inner: geminiSource,
		Cache: cacheClient,
		TTL:   time.Duration(config.AppConfig.PlacesCacheTTLMin) * time.Minute,
	}

	// Weather source: OpenWeather behind a redis cache.
	weatherSource := &weather.CachedSource{
		Inner: weather.NewOpenWeatherSource(config.AppConfig.OpenWeatherAPIKey),
		Cache: cacheClient,
		TTL:   time.Duration(config.AppConfig.WeatherCacheTTLMin) * time.Minute,
	}

	engineCfg := itinerary.DefaultConfig()
	engineCfg.DayStartMin = config.AppConfig.DayStartMinute
	engineCfg.DayEndMin = config.AppConfig.DayEndMinute
	engineCfg.MaxStops = config.AppConfig.MaxStopsPerDay
	engineCfg.TravelSpeedKmh = config.AppConfig.TravelSpeedKmh
	engineCfg.TravelBufferMin = config.AppConfig.TravelBufferMin
	engineCfg.DistanceDecay = config.AppConfig.DistanceDecayRate
	engineCfg.ComfortRadiusKm = config.AppConfig.ComfortRadiusKm
	engineCfg.HardRadiusKm = config.AppConfig.HardRadiusKm
	engineCfg.MinScore = config.AppConfig.MinPlaceScore
	engineCfg.VibeBonus = config.AppConfig.VibeBonus

	tripService := &trip.DefaultTripService{
		Places:  placeSource,
		Weather: weatherSource,
		Engine:  &itinerary.DefaultEngine{Cfg: engineCfg, Logger: logger},
		Logger:  logger,
		MaxDays: config.AppConfig.MaxTripDays,
	}
	tripHandler := handlers.NewTripHandler(tripService)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, tripHandler)

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
