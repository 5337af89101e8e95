// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GroupRepository is the local replica of the group collection together
// with the last sync timestamp.
//
// Writes are read-modify-write cycles run in one store transaction against
// the collection as stored at that moment, so writers in this and other
// processes never overwrite each other's changes with a stale snapshot.
type GroupRepository interface {
	// Groups returns the stored collection, empty on first run.
	Groups(ctx context.Context) ([]models.TabGroup, error)

	// UpdateGroups applies fn to the stored collection and saves its result
	// in one transaction. It returns the saved collection.
	UpdateGroups(ctx context.Context, fn func(groups []models.TabGroup) ([]models.TabGroup, error)) ([]models.TabGroup, error)

	// SaveSyncResult saves merge(stored collection) together with lastSync in
	// one transaction and returns the saved collection.
	SaveSyncResult(ctx context.Context, lastSync string, merge func(current []models.TabGroup) []models.TabGroup) ([]models.TabGroup, error)

	// LastSync returns the last sync timestamp, "" if never synced.
	LastSync(ctx context.Context) (string, error)

	// AcquireSyncLease marks a sync by owner as running for at most ttl. It
	// reports false when another owner, possibly another process, holds a
	// live lease.
	AcquireSyncLease(ctx context.Context, owner string, ttl time.Duration) (bool, error)

	// ReleaseSyncLease ends owner's lease.
	ReleaseSyncLease(ctx context.Context, owner string) error
}

// ContainerRepository persists the containers served by the self-hosted
// container API.
type ContainerRepository interface {
	Save(ctx context.Context, container models.Container) error
	Get(ctx context.Context, id string) (models.Container, error)
	List(ctx context.Context) ([]models.Container, error)
}

// SyncService reconciles the local and remote replicas.
type SyncService interface {
	// Synchronize runs one read-merge-write cycle. Concurrent calls are
	// coalesced onto the run in flight and receive its outcome.
	Synchronize(ctx context.Context) models.SyncOutcome
}

// GroupService implements the user-facing operations on tab groups. Every
// mutation strictly increases the group's lastModified.
type GroupService interface {
	// Create saves a new group holding tabs.
	Create(ctx context.Context, name string, tabs []models.TabEntry) (models.TabGroup, error)

	// List returns live groups, most recently modified first. A group whose
	// tabs cannot be decoded is returned with DecodeErr set.
	List(ctx context.Context) ([]models.GroupView, error)

	// Get returns one live group.
	Get(ctx context.Context, id string) (models.GroupView, error)

	Rename(ctx context.Context, id, name string) error

	// Delete turns the group into a tombstone.
	Delete(ctx context.Context, id string) error

	EditTabTitle(ctx context.Context, id string, index int, title string) error
	RemoveTab(ctx context.Context, id string, index int) error

	// MoveTab moves tab index of group fromID to the end of group toID.
	MoveTab(ctx context.Context, fromID string, index int, toID string) error

	// Export renders the stored collection, tombstones included, as JSON.
	Export(ctx context.Context) ([]byte, error)

	// Import merges a previously exported collection into the local one and
	// returns the number of groups read from data.
	Import(ctx context.Context, data []byte) (int, error)

	Stats(ctx context.Context) (models.GroupStats, error)
}

// ContainerService implements the self-hosted container API.
type ContainerService interface {
	List(ctx context.Context) ([]models.Container, error)
	Create(ctx context.Context, req models.CreateContainerRequest) (models.Container, error)
	Get(ctx context.Context, id string) (models.Container, error)

	// Update applies req to the container: a nil file deletes that name,
	// names not mentioned are kept.
	Update(ctx context.Context, id string, req models.UpdateContainerRequest) (models.Container, error)
}
