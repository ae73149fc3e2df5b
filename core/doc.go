// Package core contains the business logic for the sitemap service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SitemapEntry, change frequency values)
// - sitemap: The generation engine, XML builder, and background refresher
// - strategy: Pluggable URL sources (static, native, dynamic, cached)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger, routes)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "sitemap-app-api/core/interfaces"
//	    "sitemap-app-api/core/sitemap"
//	    "sitemap-app-api/core/strategy"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:  cache,
//	    Logger: logger,
//	}
//
//	strat, err := strategy.NewStaticStrategy(strategy.Config{
//	    Domain: "example.com",
//	    Options: strategy.Options{StaticURLs: []string{"/", "/about"}},
//	}, logger)
//	if err != nil {
//	    // missing domain is fatal
//	}
//
//	engine := sitemap.NewService(deps, time.Hour, strat)
//	xml, err := engine.Generate(ctx, "example.com", "https")
package core
