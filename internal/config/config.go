package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Parser   ParserConfig   `yaml:"parser"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// needed by commands that touch the language store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// CatalogConfig locates the predefined language definitions.
type CatalogConfig struct {
	Dir     string `yaml:"dir"     env:"CATALOG_DIR"     env-default:"./demo/languages"`
	Pattern string `yaml:"pattern" env:"CATALOG_PATTERN" env-default:"*.yaml"`
	Workers int    `yaml:"workers" env:"CATALOG_WORKERS" env-default:"4"`
}

// ParserConfig holds tokenizer settings.
type ParserConfig struct {
	PatternCacheSize int `yaml:"pattern_cache_size" env:"PARSER_PATTERN_CACHE_SIZE" env-default:"128"`
}
