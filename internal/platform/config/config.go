// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

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
  - DI-Friendly: Passed to core components (Redis, Postgres) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Snapshot storage backend identifiers, matched against [Config.CartBackend].
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Auth collaborator backend identifiers, matched against [Config.AuthBackend].
const (
	AuthBackendMock = "mock"
	AuthBackendHTTP = "http"
)

// # Configuration Schema

// Config holds all runtime configuration for the Shopora storefront API.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Key-Value storage (Redis) — cart snapshots and session tokens.
	RedisURL string `env:"REDIS_URL,required"`

	// CartBackend selects where cart snapshots are persisted:
	// "redis" (default), "postgres", or "memory" (tests/dev only).
	CartBackend string `env:"CART_BACKEND" envDefault:"redis"`

	// Relational database — only required when CART_BACKEND=postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// AuthBackend selects the auth collaborator implementation:
	// "mock" (in-process, default) or "http" (remote auth API).
	AuthBackend string `env:"AUTH_BACKEND" envDefault:"mock"`

	// AuthBaseURL is the base URL of the remote auth API (AUTH_BACKEND=http).
	AuthBaseURL string `env:"AUTH_BASE_URL"`

	// SessionSecret signs the session tokens issued by the mock collaborator.
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Cross-field requirements that struct tags cannot express.
	if cfg.CartBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is required when CART_BACKEND=postgres")
	}
	if cfg.AuthBackend == AuthBackendHTTP && cfg.AuthBaseURL == "" {
		return nil, fmt.Errorf("config: AUTH_BASE_URL is required when AUTH_BACKEND=http")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
