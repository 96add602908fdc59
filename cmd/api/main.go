// ABOUTME: Main entry point for the Stash API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stash-app-api/api"
	"stash-app-api/api/handlers"
	"stash-app-api/core/discovery"
	"stash-app-api/core/ingest"
	"stash-app-api/core/interfaces"
	"stash-app-api/core/items"
	"stash-app-api/core/summary"
	"stash-app-api/infrastructure/ai"
	"stash-app-api/infrastructure/cache/memory"
	"stash-app-api/infrastructure/cache/redis"
	stdhttp "stash-app-api/infrastructure/http/standard"
	logruslogger "stash-app-api/infrastructure/logger/logrus"
	"stash-app-api/infrastructure/scrape"
	"stash-app-api/infrastructure/storage/sqlite"
	"stash-app-api/pkg/config"
	"stash-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger()
	logger.SetDebug(os.Getenv("DEBUG") != "")
	logger.Info("Starting Stash API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"ai_provider": cfg.AI.Provider,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Scrape.Timeout) * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create storage
	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open item storage: %v", err)
	}
	defer store.Close()

	// Create scraper
	scraper := scrape.NewScraper(deps, cfg.Scrape)

	// Feature flags
	flags := featureflags.NewEnvManager("")
	flagCtx := context.Background()

	// Create services
	ingestService := ingest.NewService(deps, store, scraper)
	itemsService := items.NewService(deps, store)
	discoveryService := discovery.NewService(deps, scraper)
	summaryService := newSummaryService(cfg.AI, deps, store, flags)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(flagCtx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = 100 // 100 requests per minute
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	importHandler := handlers.NewImportHandler(ingestService)
	importHandler.RegisterRoutes(humaAPI)

	itemsHandler := handlers.NewItemsHandler(itemsService)
	itemsHandler.RegisterRoutes(humaAPI)

	discoverHandler := handlers.NewDiscoverHandler(discoveryService)
	discoverHandler.RegisterRoutes(humaAPI)

	if summaryService != nil {
		summaryHandler := handlers.NewSummaryHandler(summaryService, itemsService, logger)
		summaryHandler.RegisterRoutes(humaAPI)
	}

	// Create HTTP server. The write timeout is generous because bulk
	// imports and summary generation stream for as long as they run.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newSummaryService wires the AI provider behind the summary feature flag.
// A missing or invalid AI configuration disables the summary endpoint
// instead of preventing boot; import, discovery, and item routes do not
// need an AI provider.
func newSummaryService(cfg config.AIConfig, deps interfaces.Dependencies, store interfaces.ItemStorage, flags featureflags.Manager) *summary.Service {
	ctx := context.Background()

	if !flags.IsEnabled(ctx, featureflags.SummaryEnabled) {
		if deps.Logger != nil {
			deps.Logger.Info("Summary endpoint disabled by feature flag", nil)
		}
		return nil
	}

	provider, err := ai.NewProvider(cfg)
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.Warn("Summary endpoint disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}

	var tagger interfaces.TagExtractor
	if flags.IsEnabled(ctx, featureflags.TagExtraction) {
		tagger = provider
	}

	return summary.NewService(deps, store, provider, tagger)
}
