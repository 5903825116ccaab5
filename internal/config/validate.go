package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoDatabase is returned by RequireDatabase when no DSN is configured.
var ErrNoDatabase = errors.New("database.dsn is not configured")

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Parser.PatternCacheSize <= 0 {
		return fmt.Errorf("parser: pattern_cache_size must be > 0 (got %d)", c.Parser.PatternCacheSize)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log: format must be json or text (got %q)", c.Log.Format)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

// RequireDatabase reports whether a language store is configured.
func (c DatabaseConfig) RequireDatabase() error {
	if strings.TrimSpace(c.DSN) == "" {
		return ErrNoDatabase
	}
	return nil
}

func (c *CatalogConfig) validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return errors.New("dir is required")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("pattern %q: %w", c.Pattern, err)
	}
	if c.Pattern == "" {
		return errors.New("pattern is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	return nil
}
