// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary. Role-specific requirements are checked
// by the client and server views.
func (cfg *StructuredConfig) validate() error {
	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	switch s.Driver {
	case "", DriverSQLite, DriverBolt, DriverMemory:
		return nil
	default:
		return ErrInvalidStorageConfigs
	}
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if cfg.Storage.Driver != DriverMemory && cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Remote.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidRemoteConfigs
	}
	if cfg.Remote.Collection == "" || cfg.Remote.RequestTimeout <= 0 || cfg.Remote.Description == "" {
		return ErrInvalidRemoteConfigs
	}

	switch cfg.Codec.Mode {
	case CodecCompress, CodecEncrypt:
	default:
		return ErrInvalidCodecConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.SyncTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if cfg.Storage.Driver != DriverMemory && cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Address == "" || cfg.Server.Credential == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
