package config

import (
	"fmt"
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Remote contains the container API endpoint and request limits.
	Remote Remote
	// Storage contains the local key-value store settings.
	Storage Storage
	// Codec selects the tab payload codec.
	Codec Codec
	// Workers contains periodic sync settings.
	Workers Workers
	// Log contains the client log file location.
	Log Log
}

// ServerConfig is the container server view of [StructuredConfig].
type ServerConfig struct {
	// Server contains the listen address, credential and request timeout.
	Server Server
	// Storage contains the container store settings.
	Storage Storage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Remote:  cfg.Remote,
		Storage: cfg.Storage,
		Codec:   cfg.Codec,
		Workers: cfg.Workers,
		Log:     cfg.Log,
	}
	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = defaultClientDSN()
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the container server config view.
func GetServerConfig(flags *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}
	if serverCfg.Storage.DSN == "" {
		serverCfg.Storage.DSN = serverDBFile
	}

	return serverCfg, serverCfg.validate()
}
