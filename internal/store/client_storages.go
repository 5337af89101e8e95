package store

import (
	"context"
	"fmt"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// Local holds the tab groups and the synchronization state.
	Local *LocalStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the backend selected by cfg.Driver, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations (sqlite only).
//  3. Wraps the backend in a [LocalStore].
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	kv, err := NewKeyValueStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening %s store: %w", cfg.Driver, err)
	}

	return &ClientStorages{
		Local: NewLocalStore(kv, logger),
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.Local.Close()
}
