// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage drivers accepted by [Storage.Driver].
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// Codec modes accepted by [Codec.Mode].
const (
	CodecCompress = "compress"
	CodecEncrypt  = "encrypt"
)

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultCollection     = "containers"
	DefaultDescription    = "OneTabCloud Sync Data"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 10 * time.Minute
	DefaultSyncTimeout    = 2 * time.Minute
	DefaultServerAddress  = "localhost:8080"

	clientDBFile = "onetabcloud.db"
	serverDBFile = "onetabcloud-server.db"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        DefaultBaseURL,
			Collection:     DefaultCollection,
			RequestTimeout: DefaultRequestTimeout,
			Description:    DefaultDescription,
		},
		Storage: Storage{Driver: DriverSQLite},
		Codec:   Codec{Mode: CodecCompress},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
			SyncTimeout:  DefaultSyncTimeout,
		},
		Server: Server{
			Address:        DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// defaultClientDSN places the client database in the user config directory,
// falling back to the working directory.
func defaultClientDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return clientDBFile
	}
	return filepath.Join(dir, "onetabcloud", clientDBFile)
}
