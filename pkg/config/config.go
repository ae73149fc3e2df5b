// ABOUTME: Configuration management with environment variable and YAML file support
// ABOUTME: Defines configuration structures for server, cache, logging, and sitemap settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`

	// Sitemap contains sitemap generation configuration
	Sitemap SitemapConfig `yaml:"sitemap"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	// RateLimit is the allowed requests per window per client IP
	RateLimit int `yaml:"rate_limit"`

	// RateWindow is the rate limit window in seconds
	RateWindow int `yaml:"rate_window"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string `yaml:"type"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `yaml:"memory"`

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int `yaml:"default_expiration"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string `yaml:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string `yaml:"level"`

	// JSON switches output to the JSON formatter
	JSON bool `yaml:"json"`
}

// SitemapConfig holds sitemap generation configuration
type SitemapConfig struct {
	// Domain is the site's host name. Required.
	Domain string `yaml:"domain"`

	// Protocol is the URL scheme: http, https, or auto
	// (auto derives the scheme from each request).
	Protocol string `yaml:"protocol"`

	// ChangeFreq is the fallback change frequency for entries
	ChangeFreq string `yaml:"change_freq"`

	// CacheTTL is the sitemap cache TTL in seconds
	CacheTTL int `yaml:"cache_ttl"`

	// Strategy selects the data source (static/native/dynamic/cached)
	Strategy string `yaml:"strategy"`

	// IncludePatterns is the regex allow-list for route-backed strategies
	IncludePatterns []string `yaml:"include_patterns"`

	// ExcludePatterns is the regex drop-list; empty means the defaults
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// StaticURLs is the location list for the static strategy
	StaticURLs []string `yaml:"static_urls"`

	// Models drives the dynamic strategy, one name per model
	Models []string `yaml:"models"`

	// BackgroundRefresh enables the cached strategy's refresh task
	BackgroundRefresh bool `yaml:"background_refresh"`

	// CacheWarmup primes the cache once at startup
	CacheWarmup bool `yaml:"cache_warmup"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "sitemap_cache.db"),
			},
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			JSON:  getEnvAsBoolOrDefault("LOG_JSON", false),
		},
		Sitemap: SitemapConfig{
			Domain:            getEnvOrDefault("SITEMAP_DOMAIN", ""),
			Protocol:          getEnvOrDefault("SITEMAP_PROTOCOL", "auto"),
			ChangeFreq:        getEnvOrDefault("SITEMAP_CHANGE_FREQ", "weekly"),
			CacheTTL:          getEnvAsIntOrDefault("SITEMAP_CACHE_TTL", 3600),
			Strategy:          getEnvOrDefault("SITEMAP_STRATEGY", "native"),
			IncludePatterns:   getEnvAsSlice("SITEMAP_INCLUDE_PATTERNS"),
			ExcludePatterns:   getEnvAsSlice("SITEMAP_EXCLUDE_PATTERNS"),
			StaticURLs:        getEnvAsSlice("SITEMAP_STATIC_URLS"),
			Models:            getEnvAsSlice("SITEMAP_MODELS"),
			BackgroundRefresh: getEnvAsBoolOrDefault("SITEMAP_BACKGROUND_REFRESH", false),
			CacheWarmup:       getEnvAsBoolOrDefault("SITEMAP_CACHE_WARMUP", false),
		},
	}

	return cfg, nil
}

// LoadFromFile overlays a YAML configuration file on top of the
// environment-derived defaults. If the file does not exist, it returns
// ErrConfigNotFound so callers can decide whether that is fatal.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := LoadFromEnv()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable,
// trimming whitespace and dropping empty elements
func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'memory', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Sitemap.Domain == "" {
		return errors.New("sitemap domain cannot be empty")
	}

	switch c.Sitemap.Protocol {
	case "http", "https", "auto":
	default:
		return errors.New("sitemap protocol must be 'http', 'https', or 'auto'")
	}

	switch c.Sitemap.Strategy {
	case "static", "native", "dynamic", "cached":
	default:
		return errors.New("sitemap strategy must be 'static', 'native', 'dynamic', or 'cached'")
	}

	if c.Sitemap.CacheTTL < 1 {
		return errors.New("sitemap cache TTL must be at least 1 second")
	}

	return nil
}
