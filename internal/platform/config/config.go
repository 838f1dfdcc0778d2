// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Telugucine API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTPubKeyPath points at the PEM public key used to verify admin tokens.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Cross-Origin Resource Sharing (comma-separated origin suffixes)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"telugucine.app"`

	// Credit resolution and audit tuning
	Credit CreditConfig `envPrefix:"CREDIT_"`
}

// CreditConfig bounds the work done by slug resolution and audits.
type CreditConfig struct {
	// ResolveSampleSize is how many candidate movies are fetched to resolve a slug.
	ResolveSampleSize int `env:"RESOLVE_SAMPLE_SIZE" envDefault:"50"`

	// FilmographyLimit caps the broad refetch used to build a filmography.
	FilmographyLimit int `env:"FILMOGRAPHY_LIMIT" envDefault:"1000"`

	// ResolveCacheTTL is how long resolved slugs stay in Redis.
	ResolveCacheTTL time.Duration `env:"RESOLVE_CACHE_TTL" envDefault:"1h"`

	// TieBreak selects the resolver tie-break ("first" or "longest").
	TieBreak string `env:"TIE_BREAK" envDefault:"first"`

	// ResolveFieldOrder lists the credit columns the resolver scans, in priority order.
	ResolveFieldOrder []string `env:"RESOLVE_FIELD_ORDER" envSeparator:"," envDefault:"director,music_director,writer,hero,heroine,producer"`

	// AuditBatchSize is the keyset page size used by duplicate-name audits.
	AuditBatchSize int `env:"AUDIT_BATCH_SIZE" envDefault:"1000"`

	// AuditSimilarity is the Jaro-Winkler threshold for near-duplicate names.
	AuditSimilarity float32 `env:"AUDIT_SIMILARITY" envDefault:"0.92"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Credit.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ToolConfig holds the settings of offline tools (cmd/audit) that need the
// database but neither Redis nor token verification.
type ToolConfig struct {
	Debug       bool         `env:"DEBUG"        envDefault:"false"`
	DatabaseURL string       `env:"DATABASE_URL,required"`
	Credit      CreditConfig `envPrefix:"CREDIT_"`
}

// LoadTool parses a [ToolConfig] from the environment.
func LoadTool() (*ToolConfig, error) {
	cfg := &ToolConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Credit.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c CreditConfig) validate() error {
	if c.ResolveSampleSize < 1 || c.FilmographyLimit < 1 || c.AuditBatchSize < 1 {
		return fmt.Errorf("config: credit sample, filmography and audit batch sizes must be positive")
	}
	if !(c.AuditSimilarity > 0 && c.AuditSimilarity <= 1) {
		return fmt.Errorf("config: CREDIT_AUDIT_SIMILARITY must be in (0, 1], got %v", c.AuditSimilarity)
	}
	if c.TieBreak != "first" && c.TieBreak != "longest" {
		return fmt.Errorf("config: CREDIT_TIE_BREAK must be \"first\" or \"longest\", got %q", c.TieBreak)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsOrigin reports whether origin ends with one of the configured suffixes.
func (c *Config) AllowsOrigin(origin string) bool {
	for _, suffix := range c.AllowedOrigins {
		if suffix = strings.TrimSpace(suffix); suffix != "" && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
