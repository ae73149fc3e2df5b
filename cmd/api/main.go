// ABOUTME: Main entry point for the sitemap service
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitemap-app-api/api"
	"sitemap-app-api/api/handlers"
	"sitemap-app-api/core/interfaces"
	"sitemap-app-api/core/sitemap"
	"sitemap-app-api/core/strategy"
	"sitemap-app-api/infrastructure/cache/memory"
	"sitemap-app-api/infrastructure/cache/redis"
	"sitemap-app-api/infrastructure/cache/sqlite"
	logruslogger "sitemap-app-api/infrastructure/logger/logrus"
	"sitemap-app-api/infrastructure/routes"
	"sitemap-app-api/pkg/config"
)

func main() {
	// Load configuration, preferring an explicit config file
	var cfg *config.Config
	var err error
	if path := os.Getenv("SITEMAP_CONFIG"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	logger.Info("Starting sitemap service", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"domain":     cfg.Sitemap.Domain,
		"strategy":   cfg.Sitemap.Strategy,
	})

	cache := buildCache(cfg, logger)

	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Router first: the native and cached strategies read its routes
	router := api.NewRouter(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindow) * time.Second,
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	registry := routes.NewChiRegistry(router)

	strategyCfg := strategy.Config{
		Domain:     cfg.Sitemap.Domain,
		ChangeFreq: cfg.Sitemap.ChangeFreq,
		CacheTTL:   cfg.Sitemap.CacheTTL,
		Options: strategy.Options{
			IncludePatterns:   cfg.Sitemap.IncludePatterns,
			ExcludePatterns:   cfg.Sitemap.ExcludePatterns,
			StaticURLs:        cfg.Sitemap.StaticURLs,
			ModelConfigs:      modelConfigs(cfg.Sitemap.Models),
			BackgroundRefresh: cfg.Sitemap.BackgroundRefresh,
			CacheWarmup:       cfg.Sitemap.CacheWarmup,
		},
	}

	engine, cleanup, err := buildEngine(cfg, strategyCfg, deps, registry, logger)
	if err != nil {
		log.Fatalf("Failed to build sitemap strategy: %v", err)
	}

	sitemapHandler := handlers.NewSitemapHandler(engine, logger, cfg.Sitemap.Domain, cfg.Sitemap.Protocol)
	sitemapHandler.RegisterRoutes(router)

	if cfg.Sitemap.CacheWarmup {
		warmupCache(engine, cfg, logger)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	// Stop the background refresher before the listener so the last
	// refresh cycle cannot race the cache teardown
	cleanup()

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

// buildCache selects the cache backend, falling back to memory when a
// backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	}

	logger.Info("Using memory cache", nil)
	expiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(expiration, 10*time.Minute)
}

// buildEngine constructs the configured strategy and the generation
// engine around it. The returned cleanup stops the cached strategy's
// background task and is a no-op for the other variants.
func buildEngine(cfg *config.Config, strategyCfg strategy.Config, deps interfaces.Dependencies, registry interfaces.RouteRegistry, logger interfaces.Logger) (*sitemap.Service, func(), error) {
	cleanup := func() {}
	ttl := strategyCfg.TTL()

	var strat interfaces.SitemapStrategy
	var err error

	switch cfg.Sitemap.Strategy {
	case "static":
		strat, err = strategy.NewStaticStrategy(strategyCfg, logger)

	case "dynamic":
		strat, err = strategy.NewDynamicStrategy(strategyCfg, logger)

	case "cached":
		var cached *strategy.CachedStrategy
		cached, err = strategy.NewCachedStrategy(strategyCfg, registry, logger)
		if err == nil {
			ttl = cached.EffectiveTTL()
			strat = cached
		}

	default:
		strat, err = strategy.NewNativeStrategy(strategyCfg, registry, logger)
	}

	if err != nil {
		return nil, nil, err
	}

	engine := sitemap.NewService(deps, ttl, strat)

	if cached, ok := strat.(*strategy.CachedStrategy); ok {
		protocol := backgroundProtocol(cfg.Sitemap.Protocol)
		cached.Init(func(ctx context.Context) error {
			_, err := engine.Regenerate(ctx, cfg.Sitemap.Domain, protocol)
			return err
		})
		cleanup = cached.Cleanup
	}

	return engine, cleanup, nil
}

// warmupCache primes the cache once at startup, best-effort.
func warmupCache(engine *sitemap.Service, cfg *config.Config, logger interfaces.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := engine.Generate(ctx, cfg.Sitemap.Domain, backgroundProtocol(cfg.Sitemap.Protocol)); err != nil {
		logger.Warn("Cache warmup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// backgroundProtocol picks a concrete scheme for generation passes that
// have no request to derive one from.
func backgroundProtocol(protocol string) string {
	if protocol == "auto" {
		return "https"
	}
	return protocol
}

func modelConfigs(models []string) []strategy.ModelConfig {
	configs := make([]strategy.ModelConfig, 0, len(models))
	for _, m := range models {
		configs = append(configs, strategy.ModelConfig{Model: m})
	}
	return configs
}
