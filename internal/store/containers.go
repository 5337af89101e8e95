// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

const containerKeyPrefix = "container/"

// ContainerRepository persists server-side containers in a [KeyValueStore],
// one JSON value per container.
type ContainerRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewContainerRepository(kv KeyValueStore, logger *logger.Logger) *ContainerRepository {
	return &ContainerRepository{kv: kv, logger: logger}
}

// Save inserts or replaces c.
func (r *ContainerRepository) Save(ctx context.Context, c models.Container) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode container: %w", err)
	}

	if err = r.kv.Set(ctx, map[string][]byte{containerKeyPrefix + c.ID: raw}); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ContainerRepository.Save").
			Str("container_id", c.ID).
			Msg("failed to save container")
		return fmt.Errorf("failed to save container (id=%s): %w", c.ID, err)
	}
	return nil
}

// Get returns the container with id or [ErrContainerNotFound].
func (r *ContainerRepository) Get(ctx context.Context, id string) (models.Container, error) {
	key := containerKeyPrefix + id

	values, err := r.kv.Get(ctx, key)
	if err != nil {
		return models.Container{}, fmt.Errorf("failed to read container (id=%s): %w", id, err)
	}

	raw, ok := values[key]
	if !ok {
		return models.Container{}, ErrContainerNotFound
	}

	return decodeContainer(raw)
}

// List returns every container ordered by id.
func (r *ContainerRepository) List(ctx context.Context) ([]models.Container, error) {
	values, err := r.kv.List(ctx, containerKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	out := make([]models.Container, 0, len(values))
	for key, raw := range values {
		c, err := decodeContainer(raw)
		if err != nil {
			r.logger.Err(err).Str("func", "ContainerRepository.List").Str("key", key).Msg("skipping corrupt container")
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func decodeContainer(raw []byte) (models.Container, error) {
	var c models.Container
	if err := json.Unmarshal(raw, &c); err != nil {
		return models.Container{}, fmt.Errorf("%w: container: %w", ErrCorruptValue, err)
	}
	if c.Files == nil {
		c.Files = map[string]models.ContainerFile{}
	}
	return c, nil
}
