// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Keeps generated sitemaps across restarts so cold starts serve warm

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is the error returned when a key is not found or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// cleanupInterval controls how often expired rows are deleted.
const cleanupInterval = 5 * time.Minute

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	stop     chan struct{}
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "sitemap_cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		stop:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS sitemap_cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sitemap_cache_expiry ON sitemap_cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	var expiry int64

	query := "SELECT value, expiry FROM sitemap_cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value, &expiry)

	if err == sql.ErrNoRows {
		return nil, ErrCacheMiss
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL.
// A zero TTL stores the value without expiration (expiry column 0).
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	query := `
		INSERT OR REPLACE INTO sitemap_cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, key, value, expiry)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := c.db.ExecContext(ctx, "DELETE FROM sitemap_cache WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Close stops the cleanup routine and closes the database
func (c *Client) Close() error {
	close(c.stop)
	return c.db.Close()
}

// cleanupRoutine periodically deletes expired rows
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			_, _ = c.db.Exec("DELETE FROM sitemap_cache WHERE expiry > 0 AND expiry <= ?", time.Now().Unix())
		}
	}
}
