// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/internal/utils"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

type containerService struct {
	repo ContainerRepository
	ids  *utils.UUIDGenerator
	now  func() time.Time

	// mu makes read-modify-write of a container atomic.
	mu sync.Mutex

	logger *logger.Logger
}

func NewContainerService(repo ContainerRepository, logger *logger.Logger) ContainerService {
	return &containerService{
		repo:   repo,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// List returns every container without file contents.
func (s *containerService) List(ctx context.Context) ([]models.Container, error) {
	containers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	out := make([]models.Container, 0, len(containers))
	for _, c := range containers {
		c.Files = nil
		out = append(out, c)
	}
	return out, nil
}

func (s *containerService) Create(ctx context.Context, req models.CreateContainerRequest) (models.Container, error) {
	c := models.Container{
		ID:          s.ids.Generate(),
		Description: req.Description,
		Public:      req.Public,
		Files:       make(map[string]models.ContainerFile, len(req.Files)),
		UpdatedAt:   models.FormatTime(s.now()),
	}
	for name, file := range req.Files {
		c.Files[name] = file
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return models.Container{}, fmt.Errorf("save container: %w", err)
	}

	s.logger.Info().
		Str("func", "containerService.Create").
		Str("container_id", c.ID).
		Int("files", len(c.Files)).
		Msg("container created")

	return c, nil
}

func (s *containerService) Get(ctx context.Context, id string) (models.Container, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Container{}, mapRepositoryError(id, err)
	}
	return c, nil
}

func (s *containerService) Update(ctx context.Context, id string, req models.UpdateContainerRequest) (models.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Container{}, mapRepositoryError(id, err)
	}
	if c.Files == nil {
		c.Files = make(map[string]models.ContainerFile, len(req.Files))
	}

	for name, file := range req.Files {
		if file == nil {
			delete(c.Files, name)
			continue
		}
		c.Files[name] = *file
	}
	c.UpdatedAt = models.FormatTime(s.now())

	if err = s.repo.Save(ctx, c); err != nil {
		return models.Container{}, fmt.Errorf("save container: %w", err)
	}
	return c, nil
}

func mapRepositoryError(id string, err error) error {
	if errors.Is(err, store.ErrContainerNotFound) {
		return fmt.Errorf("%w: %s", ErrContainerNotFound, id)
	}
	return fmt.Errorf("get container: %w", err)
}
