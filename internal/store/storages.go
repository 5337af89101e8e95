package store

import (
	"context"
	"fmt"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
)

// NewKeyValueStore opens the backend selected by cfg.Driver. An empty
// driver selects sqlite.
func NewKeyValueStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (KeyValueStore, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return NewSQLiteStore(ctx, cfg.DSN, logger)
	case config.DriverBolt:
		return NewBoltStore(cfg.DSN, logger)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Storages groups the container server's repositories.
type Storages struct {
	ContainerRepository *ContainerRepository

	kv KeyValueStore
}

// NewStorages opens the server store described by cfg.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	kv, err := NewKeyValueStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening %s store: %w", cfg.Driver, err)
	}

	return &Storages{
		ContainerRepository: NewContainerRepository(kv, logger),
		kv:                  kv,
	}, nil
}

func (s *Storages) Close() error {
	return s.kv.Close()
}
