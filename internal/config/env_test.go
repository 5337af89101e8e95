// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"REMOTE_BASE_URL":        "https://api.github.com",
		"REMOTE_COLLECTION":      "gists",
		"REMOTE_CREDENTIAL":      "ghp_secret",
		"REMOTE_REQUEST_TIMEOUT": "15s",
		"REMOTE_DESCRIPTION":     "My Tabs",

		"STORAGE_DRIVER": "bolt",
		"STORAGE_DSN":    "/var/lib/onetabcloud/tabs.bolt",

		"CODEC_MODE": "encrypt",

		"WORKERS_SYNC_INTERVAL": "5m",
		"WORKERS_SYNC_TIMEOUT":  "1m",

		"LOG_FILE": "/var/log/onetabcloud.log",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_CREDENTIAL":      "server_secret",
		"SERVER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.github.com", cfg.Remote.BaseURL)
	assert.Equal(t, "gists", cfg.Remote.Collection)
	assert.Equal(t, "ghp_secret", cfg.Remote.Credential)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "My Tabs", cfg.Remote.Description)

	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/onetabcloud/tabs.bolt", cfg.Storage.DSN)

	assert.Equal(t, "encrypt", cfg.Codec.Mode)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Minute, cfg.Workers.SyncTimeout)

	assert.Equal(t, "/var/log/onetabcloud.log", cfg.Log.File)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, "server_secret", cfg.Server.Credential)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"REMOTE_CREDENTIAL": "token",
		"SERVER_ADDRESS":    "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Remote.Credential)
	assert.Empty(t, cfg.Remote.BaseURL)
	assert.Zero(t, cfg.Remote.RequestTimeout)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Empty(t, cfg.Server.Credential)

	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"WORKERS_SYNC_INTERVAL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"REMOTE_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Remote.RequestTimeout)
		})
	}
}

// Helpers

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

		"REMOTE_BASE_URL",
		"REMOTE_COLLECTION",
		"REMOTE_CREDENTIAL",
		"REMOTE_REQUEST_TIMEOUT",
		"REMOTE_DESCRIPTION",

		"STORAGE_DRIVER",
		"STORAGE_DSN",

		"CODEC_MODE",

		"WORKERS_SYNC_INTERVAL",
		"WORKERS_SYNC_TIMEOUT",

		"LOG_FILE",

		"SERVER_ADDRESS",
		"SERVER_CREDENTIAL",
		"SERVER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
