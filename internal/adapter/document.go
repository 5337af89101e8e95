// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// RemoteStore implements [DocumentStore] on top of a [ContainerAPI].
//
// It is bound to a single container per installation. The container id is
// resolved once by lookup-or-create and cached through [ContainerIDStore].
type RemoteStore struct {
	api         ContainerAPI
	ids         ContainerIDStore
	description string

	chunkLimit int
	now        func() time.Time

	// resolveMu serializes container resolution.
	resolveMu sync.Mutex

	// knownMu guards known, the chunk names present in the container after
	// the last Load or Save. nil means unknown.
	knownMu sync.Mutex
	known   map[string]struct{}

	logger *logger.Logger
}

var _ DocumentStore = (*RemoteStore)(nil)

// NewRemoteStore constructs a [RemoteStore]. description is the tag used to
// recognise the installation's container when no id is cached.
func NewRemoteStore(api ContainerAPI, ids ContainerIDStore, description string, logger *logger.Logger) *RemoteStore {
	return &RemoteStore{
		api:         api,
		ids:         ids,
		description: description,
		chunkLimit:  ChunkLimit,
		now:         time.Now,
		logger:      logger,
	}
}

// ResolveContainer returns the id of the installation's container.
//
// A cached id is returned as is. Otherwise existing containers are searched
// for one whose description matches; when none does, a new container with
// an empty index is created. The resolved id is cached before returning.
// Concurrent callers are serialized, so at most one container is created.
func (s *RemoteStore) ResolveContainer(ctx context.Context) (string, error) {
	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	id, err := s.ids.RemoteDocumentID(ctx)
	if err != nil {
		return "", fmt.Errorf("read cached container id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	containers, err := s.api.ListContainers(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range containers {
		if c.Description == s.description && c.ID != "" {
			id = c.ID
			break
		}
	}

	if id == "" {
		index, err := MarshalIndex(EmptyIndex(models.FormatTime(s.now())))
		if err != nil {
			return "", err
		}

		created, err := s.api.CreateContainer(ctx, s.description, map[string]models.ContainerFile{
			models.IndexFileName: {Content: index},
		})
		if err != nil {
			return "", err
		}
		id = created.ID
		s.setKnown(nil)
	} else {
		s.logger.Info().
			Str("func", "RemoteStore.ResolveContainer").
			Str("container_id", id).
			Msg("found existing remote container")
	}

	if err = s.ids.SetRemoteDocumentID(ctx, id); err != nil {
		return "", fmt.Errorf("cache container id: %w", err)
	}
	return id, nil
}

// Load reads and reassembles the remote document. Recovered problems
// (missing index, missing chunks) are logged and yield a partial or empty
// document rather than an error.
func (s *RemoteStore) Load(ctx context.Context) (models.Document, error) {
	id, err := s.ResolveContainer(ctx)
	if err != nil {
		return models.Document{}, err
	}

	container, err := s.api.GetContainer(ctx, id)
	if err != nil {
		return models.Document{}, err
	}

	doc, warnings, err := DecodeDocument(container.Files)
	for _, w := range warnings {
		s.logWarning(id, w)
	}
	if err != nil {
		return models.Document{}, err
	}

	known := make(map[string]struct{})
	for name := range container.Files {
		if isChunkName(name) {
			known[name] = struct{}{}
		}
	}
	s.setKnown(known)

	return doc, nil
}

// Save writes doc to the container in a single update carrying every chunk,
// the index and the deletion of chunks left over from a larger previous
// document. A failed save therefore leaves the previous document readable.
// Leftover chunks are only known after a Load or Save in this process; until
// then they stay in the container, where readers ignore them since they are
// not named by the index.
func (s *RemoteStore) Save(ctx context.Context, doc models.Document) error {
	id, err := s.ResolveContainer(ctx)
	if err != nil {
		return err
	}

	lastSync := doc.LastSync
	if lastSync == "" {
		lastSync = models.FormatTime(s.now())
	}

	encoded, err := EncodeDocument(doc, lastSync, s.chunkLimit)
	if err != nil {
		return err
	}

	index, err := MarshalIndex(encoded.Index)
	if err != nil {
		return err
	}

	files := make(map[string]*models.ContainerFile, len(encoded.Index.Files)+1)
	written := make(map[string]struct{}, len(encoded.Index.Files))
	for _, name := range encoded.Index.Files {
		files[name] = &models.ContainerFile{Content: encoded.Chunks[name]}
		written[name] = struct{}{}
	}
	files[models.IndexFileName] = &models.ContainerFile{Content: index}

	stale := s.staleChunks(written)
	for _, name := range stale {
		files[name] = nil
	}

	if err = s.api.UpdateContainer(ctx, id, files); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	s.setKnown(written)

	s.logger.Debug().
		Str("func", "RemoteStore.Save").
		Str("container_id", id).
		Int("chunks", len(encoded.Index.Files)).
		Strs("removed", stale).
		Int("groups", len(doc.Groups)).
		Msg("saved remote document")

	return nil
}

// staleChunks returns the known chunk names that are not in written, sorted.
func (s *RemoteStore) staleChunks(written map[string]struct{}) []string {
	s.knownMu.Lock()
	defer s.knownMu.Unlock()

	stale := make([]string, 0)
	for name := range s.known {
		if _, ok := written[name]; !ok {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	return stale
}

func (s *RemoteStore) setKnown(names map[string]struct{}) {
	s.knownMu.Lock()
	s.known = names
	s.knownMu.Unlock()
}

func (s *RemoteStore) logWarning(id string, w error) {
	var gap *ChunkGapError
	if errors.As(w, &gap) {
		s.logger.Warn().
			Str("func", "RemoteStore.Load").
			Str("container_id", id).
			Str("chunk", gap.Name).
			Msg("skipping missing chunk, its groups are lost from this read")
		return
	}

	s.logger.Info().
		Err(w).
		Str("func", "RemoteStore.Load").
		Str("container_id", id).
		Msg("treating remote document as empty")
}
