// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Johan Ferguson

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// registrar. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token validity
	// window and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the registrar's sqlite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenTTL is the advisory validity window of a registration token,
	// measured from the bundle's generatedAtUtc field. The codec itself
	// never enforces expiry; the registrar does, using this value.
	// Env: APP_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// Version is the semantic version string of the running application,
	// exposed via the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the persistence settings for registered-server records.
type Storage struct {
	// DSN is the sqlite database path. ":memory:" keeps the registry in
	// process memory, which is useful for tests and throwaway runs.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long a single request may take end to end.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM/SIGINT.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// defaultConfig supplies the values used for any field left unset by every
// other source. The 15-minute token window is the documented default of the
// registration scheme.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenTTL: 15 * time.Minute,
		},
		Storage: Storage{
			DSN: "signalsurge.db",
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the registrar
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
