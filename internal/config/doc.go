// Package config provides configuration loading, merging, and validation
// facilities for the API calling layer and the integrations built on it.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view handed
// to the HTTP adapter.
//
// The calling layer itself never reads configuration: it receives a ready
// [ClientAdapter] value.
package config
