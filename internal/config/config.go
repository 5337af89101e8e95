// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for OneTabCloud.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the container API endpoint, credential and request
	// limits used by the sync client.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage selects the local key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Codec selects how tab lists are encoded before they are stored.
	Codec Codec `envPrefix:"CODEC_"`

	// Workers holds configuration for the periodic sync worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds client log file settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds settings of the self-hosted container server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote describes the container API the client synchronizes with.
type Remote struct {
	// BaseURL is the scheme://host[:port][/prefix] of the container API.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Collection is the path segment under BaseURL that lists containers,
	// "containers" for the bundled server or "gists" for GitHub.
	// Env: REMOTE_COLLECTION
	Collection string `env:"COLLECTION"`

	// Credential is a bearer token. When set it takes precedence over the
	// credential stored locally with `credential set`.
	// Env: REMOTE_CREDENTIAL
	Credential string `env:"CREDENTIAL"`

	// RequestTimeout bounds every single container API request.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Description is the tag used to find this installation's container.
	// Env: REMOTE_DESCRIPTION
	Description string `env:"DESCRIPTION"`
}

// Storage selects and locates the local key-value store.
type Storage struct {
	// Driver is one of "sqlite", "bolt" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the database file path for the sqlite and bolt drivers.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Codec selects the tab payload codec.
type Codec struct {
	// Mode is "compress" or "encrypt".
	// Env: CODEC_MODE
	Mode string `env:"MODE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period between automatic synchronizations.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncTimeout bounds one whole synchronization run.
	// Env: WORKERS_SYNC_TIMEOUT
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT"`
}

// Log holds client logging settings.
type Log struct {
	// File is the path of the rotated client log file.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Server holds network settings for the self-hosted container server.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Credential is the bearer token every request must present.
	// Env: SERVER_CREDENTIAL
	Credential string `env:"CREDENTIAL"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags (already parsed into flags; may be nil)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
