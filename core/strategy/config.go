// ABOUTME: Shared configuration for sitemap strategies
// ABOUTME: Validates the domain and applies change-frequency and TTL defaults

package strategy

import (
	"time"

	"sitemap-app-api/core/domain"
	coreerrors "sitemap-app-api/core/errors"
)

// DefaultCacheTTL is the cache TTL applied when none is configured.
const DefaultCacheTTL = 3600

// DefaultExcludePatterns drops admin paths, api paths, and dunder
// segments from route-backed strategies unless the operator overrides
// the exclude list.
var DefaultExcludePatterns = []string{
	`^/admin`,
	`^/api`,
	`__`,
}

// ModelConfig names one data model a dynamic strategy generates URLs for.
type ModelConfig struct {
	Model string
}

// Options is the strategy-specific option bag.
type Options struct {
	// IncludePatterns, when non-empty, is a regex allow-list applied
	// after the exclude patterns.
	IncludePatterns []string

	// ExcludePatterns is a regex drop-list. Empty means the defaults.
	ExcludePatterns []string

	// StaticURLs is the fixed location list for the static strategy.
	StaticURLs []string

	// ModelConfigs drives the dynamic strategy, one entry per model.
	ModelConfigs []ModelConfig

	// BackgroundRefresh enables the cached strategy's refresh task.
	BackgroundRefresh bool

	// CacheWarmup primes the cache once at startup. Reserved.
	CacheWarmup bool
}

// Config is the configuration shared by all strategy variants.
type Config struct {
	// Domain is the site's host name. Required.
	Domain string

	// ChangeFreq is the fallback change frequency for entries.
	ChangeFreq string

	// CacheTTL is the cache time-to-live in seconds.
	CacheTTL int

	// Options holds strategy-specific settings.
	Options Options
}

// Validate checks the config and applies defaults in place.
// A missing domain is the one fatal error of this package.
func (c *Config) Validate() error {
	if c.Domain == "" {
		return &coreerrors.ConfigError{Field: "domain", Message: "domain is required"}
	}

	if c.ChangeFreq == "" {
		c.ChangeFreq = domain.ChangeFreqWeekly
	} else if !domain.IsValidChangeFreq(c.ChangeFreq) {
		return &coreerrors.ValidationError{
			Field:   "change_freq",
			Message: "must be one of the seven sitemap change frequency values",
		}
	}

	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}

	return nil
}

// TTL returns the configured cache TTL as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// excludePatterns returns the configured exclude list, or the defaults
// when none is set.
func (c *Config) excludePatterns() []string {
	if len(c.Options.ExcludePatterns) > 0 {
		return c.Options.ExcludePatterns
	}
	return DefaultExcludePatterns
}
