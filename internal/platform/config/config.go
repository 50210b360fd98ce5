// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A '.env' file in the
working directory, when present, is loaded first through 'joho/godotenv';
variables already set in the process environment win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the renderer, cache and server via constructors.
  - Zero Hidden State: No global variables are used to store config.

Drawing geometry starts from [layout.Default] and single values can be
overridden with DAYBOOK_LAYOUT_* variables (e.g. DAYBOOK_LAYOUT_GRID_SPACING=15).
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/daybook/internal/layout"
)

// # Configuration Schema

// Config holds all runtime configuration for the daybook CLI and API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PublicBaseURL prefixes the download links handed out by the API.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// AllowedOriginSuffix is the CORS origin suffix accepted outside development.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"daybook.app"`

	// Render history (PostgreSQL). Disabled when empty.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Rendered document cache (Redis). Disabled when empty.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`

	// Signed download links. Disabled when the secret is empty.
	LinkSecret string        `env:"LINK_SIGNING_SECRET"`
	LinkTTL    time.Duration `env:"LINK_TTL" envDefault:"72h"`

	// Daybook defaults used by the CLI when no flag is given.
	StartDate  string `env:"DAYBOOK_START_DATE" envDefault:"10.02.2025"`
	Weeks      int    `env:"DAYBOOK_WEEKS"      envDefault:"52"`
	OutputPath string `env:"DAYBOOK_OUTPUT"     envDefault:"foldable_daybook.pdf"`
	Title      string `env:"DAYBOOK_TITLE"      envDefault:"Daybook"`

	// Layout is the page geometry.
	Layout layout.Layout `envPrefix:"DAYBOOK_LAYOUT_"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is the normal case in containers.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	// Seed geometry with its defaults so that only overridden fields change.
	cfg := &Config{Layout: layout.Default()}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// HistoryEnabled reports whether render runs are recorded in PostgreSQL.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// CacheEnabled reports whether rendered documents are cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// OriginSuffix implements [middleware.AppConfig].
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
