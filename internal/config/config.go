// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the API
// calling layer. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the outbound HTTP transport: the base
	// address of the third-party API, the request timeout and the headers
	// sent with every call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds the credentials used by integrations that authenticate
	// with an explicit Authorization header.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the outbound HTTP transport.
type Adapter struct {
	// BaseURL is the address every relative request URI is resolved
	// against (e.g. "https://api.example.com/v1"). A missing scheme
	// defaults to http.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// call (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request when non-empty.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// DefaultHeaders are copied into every request before the per-call
	// authentication headers are applied ("X-Api-Version:2,X-Tenant:acme").
	// Env: ADAPTER_DEFAULT_HEADERS
	DefaultHeaders map[string]string `env:"DEFAULT_HEADERS"`
}

// Auth holds credentials for explicit header authentication.
type Auth struct {
	// BearerToken is sent as "Authorization: Bearer <token>" by
	// integrations that do not rely on ambient credentials.
	// Env: AUTH_BEARER_TOKEN
	BearerToken string `env:"BEARER_TOKEN"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory (only fills unset variables)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
