// File: lexifeed/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexifeed/cache"
	"lexifeed/config"
	"lexifeed/cron"
	"lexifeed/database"
	vocabRepo "lexifeed/database/repository/vocab"
	"lexifeed/handlers"
	"lexifeed/middleware"
	"lexifeed/routes"
	"lexifeed/services/feed"
	ai "lexifeed/services/intelligence"
	"lexifeed/services/reading"
	"lexifeed/services/vocab"
	"lexifeed/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Response cache: in-process by default, Redis when configured.
	ttl := time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
	var store cache.Store
	if config.AppConfig.CacheBackend == "redis" {
		utils.InitCache()
		store = cache.NewRedisStore(utils.GetCacheClient(), ttl, logger)
	} else {
		store = cache.NewMemoryStore(ttl)
	}

	// Durable vocabulary ledger: MongoDB, or in-memory when no database is
	// configured (development convenience; counts then die with the process).
	var ledger vocabRepo.VocabRepository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		ledger = vocabRepo.NewMongoVocabRepo()
	} else {
		logger.Warn("no DATABASE_URL set, vocabulary ledger is in-memory only")
		ledger = vocabRepo.NewMemoryVocabRepo()
	}

	providerCtx := context.Background()
	provider, err := ai.NewGeminiProvider(providerCtx, config.AppConfig.GeminiAPIKey, ttsKey())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize content provider: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	feedService := feed.NewDefaultFeedService(
		store,
		provider,
		logger,
		config.AppConfig.FeedCompactLimit,
		config.AppConfig.FeedFullLimit,
	)
	readingService := reading.NewDefaultReadingService(store, provider, logger)
	vocabService := vocab.NewDefaultVocabService(store, provider, ledger, logger)

	feedHandler := handlers.NewFeedHandler(feedService)
	readingHandler := handlers.NewReadingHandler(readingService)
	vocabHandler := handlers.NewVocabHandler(vocabService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Feed session endpoints.
		CreateFeedSessionHandler: feedHandler.CreateSessionHandler,
		GetFeedSessionHandler:    feedHandler.GetSessionHandler,
		SelectCategoryHandler:    feedHandler.SelectCategoryHandler,
		SearchFeedHandler:        feedHandler.SearchHandler,
		UpgradeFeedHandler:       feedHandler.UpgradeHandler,
		LoadMoreHandler:          feedHandler.LoadMoreHandler,

		// Reading endpoints.
		GetArticleHandler:    readingHandler.GetArticleHandler,
		GetDailyQuoteHandler: readingHandler.GetDailyQuoteHandler,

		// Vocabulary endpoints.
		LookupWordHandler:   vocabHandler.LookupHandler,
		GetLedgerHandler:    vocabHandler.LedgerHandler,
		GetWordAudioHandler: vocabHandler.AudioHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Daily quote prewarm needs Redis for the asynq queue, independent of
	// which response-cache backend is selected.
	if config.AppConfig.RedisAddr != "" {
		cron.InitQuotePrewarmWorker(readingService)
	}

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

// ttsKey falls back to the Gemini key when no dedicated TTS key is set.
func ttsKey() string {
	if config.AppConfig.GoogleTTSAPIKey != "" {
		return config.AppConfig.GoogleTTSAPIKey
	}
	return config.AppConfig.GeminiAPIKey
}
