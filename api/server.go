// ABOUTME: HTTP router assembly with CORS, request logging, and rate limiting
// ABOUTME: Produces a chi router the sitemap handler and app routes mount on

package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"sitemap-app-api/api/middleware"
	"sitemap-app-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewRouter creates a chi router with the standard middleware stack.
// CORS runs first, then request logging, then rate limiting.
func NewRouter(cfg APIConfig) chi.Router {
	router := chi.NewRouter()

	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return router
}
