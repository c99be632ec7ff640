package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartShopper/app/echo-server/router"
	"smartShopper/business/analysis"
	"smartShopper/business/product"
	"smartShopper/business/recommendation"
	"smartShopper/business/search"
	"smartShopper/internal/middleware"
	"smartShopper/internal/repository/discovery"
	"smartShopper/internal/repository/fixture"
	psqlRepo "smartShopper/internal/repository/postgres"
	redisRepo "smartShopper/internal/repository/redis"
	"smartShopper/internal/repository/shopdata"
	"smartShopper/internal/rest"
	"smartShopper/pkg/config"
	"smartShopper/pkg/database"
	redisdb "smartShopper/pkg/database/redis"
	"smartShopper/pkg/logger"
	"smartShopper/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Smart Shopper", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(db)
	aggregatesRepo := psqlRepo.NewReviewAggregateRepository(db)

	// Redis cache in front of the aggregate repo; optional, the repo alone
	// works when Redis is down at boot.
	var aggregates recommendation.ReviewAggregateResolver = aggregatesRepo
	if redisClient, err := redisdb.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, serving aggregates without cache", "error", err.Error())
	} else {
		defer func() { _ = redisdb.CloseRedisClient(redisClient) }()
		aggregates = redisRepo.NewAggregateCache(redisClient, aggregatesRepo)
	}

	// Candidate sources: generative discovery first, shopping feed when no
	// model key is configured, static fixture as the last resort.
	var candidateSource search.CandidateSource
	switch {
	case cfg.OpenAI.APIKey != "":
		candidateSource = discovery.NewOpenAIClient(discovery.OpenAIConfig{
			Endpoint: cfg.OpenAI.Endpoint,
			APIKey:   cfg.OpenAI.APIKey,
			Model:    cfg.OpenAI.Model,
		})
	case cfg.ShopData.BaseURL != "":
		candidateSource = shopdata.NewClient(shopdata.Config{
			BaseURL:           cfg.ShopData.BaseURL,
			BasicAuthUsername: cfg.ShopData.BasicAuthUsername,
			BasicAuthPassword: cfg.ShopData.BasicAuthPassword,
		})
	default:
		logger.Warn("no candidate source configured, search serves mock data only")
		candidateSource = fixture.NewSource()
	}

	// Init service
	productService := product.NewProductService(productsRepo)
	recommendationService := recommendation.NewService(productsRepo, aggregates, recommendation.DefaultConfig())
	searchService := search.NewService(candidateSource, fixture.NewSource(), productsRepo)
	analysisService := analysis.NewService(productsRepo, aggregates)

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	searchHandler := rest.NewSearchHandler(searchService)
	analysisHandler := rest.NewAnalysisHandler(analysisService)
	aggregateHandler := rest.NewReviewAggregateHandler(aggregatesRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupSearchRoutes(api, searchHandler)
	router.SetupAnalysisRoutes(api, analysisHandler)
	router.SetupReviewAggregateRoutes(api, aggregateHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
