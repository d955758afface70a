// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_BASE_URL":        "https://api.example.com/v1",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_USER_AGENT":      "demo-client/1.0",
		"ADAPTER_DEFAULT_HEADERS": "X-Api-Version:2,X-Tenant:acme",

		"AUTH_BEARER_TOKEN": "secret-token",

		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.example.com/v1", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "demo-client/1.0", cfg.Adapter.UserAgent)
	assert.Equal(t, map[string]string{"X-Api-Version": "2", "X-Tenant": "acme"}, cfg.Adapter.DefaultHeaders)

	assert.Equal(t, "secret-token", cfg.Auth.BearerToken)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_BASE_URL": "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Adapter.UserAgent)
	assert.Empty(t, cfg.Adapter.DefaultHeaders)
	assert.Empty(t, cfg.Auth.BearerToken)
	assert.Empty(t, cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_ExportsUnsetVariables(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_USER_AGENT=dotenv-agent\nLOG_LEVEL=warn\n"), 0o600))
	setEnvVars(t, map[string]string{"LOG_LEVEL": "error"})
	t.Cleanup(func() { _ = os.Unsetenv("ADAPTER_USER_AGENT") })

	// Act
	err := loadDotEnv(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "dotenv-agent", os.Getenv("ADAPTER_USER_AGENT"))
	// Already exported variables win over the file.
	assert.Equal(t, "error", os.Getenv("LOG_LEVEL"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"ADAPTER_BASE_URL",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_USER_AGENT",
		"ADAPTER_DEFAULT_HEADERS",

		"AUTH_BEARER_TOKEN",

		"LOG_LEVEL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}
