package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid container API settings
	// (for example, a base URL without scheme or a zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN for a file driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCodecConfigs indicates an unsupported codec mode.
	ErrInvalidCodecConfigs = errors.New("invalid codec configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid container server settings
	// (for example, a missing credential).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
