// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/internal/codec"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/utils"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// modifiedResolution is the granularity of generated lastModified values.
// Peers parsing timestamps with millisecond precision still see every bump.
const modifiedResolution = time.Millisecond

type groupService struct {
	repo  GroupRepository
	codec codec.Codec
	ids   *utils.UUIDGenerator
	now   func() time.Time

	// mu serializes read-modify-write cycles on the collection.
	mu sync.Mutex

	logger *logger.Logger
}

// NewGroupService constructs the group operations over repo. Tab lists are
// stored through c.
func NewGroupService(repo GroupRepository, c codec.Codec, logger *logger.Logger) GroupService {
	return &groupService{
		repo:   repo,
		codec:  c,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

func (s *groupService) Create(ctx context.Context, name string, tabs []models.TabEntry) (models.TabGroup, error) {
	if tabs == nil {
		tabs = []models.TabEntry{}
	}

	blob, err := s.codec.Encode(ctx, tabs)
	if err != nil {
		return models.TabGroup{}, fmt.Errorf("encode tabs: %w", err)
	}

	group := models.TabGroup{
		ID:           s.ids.Generate(),
		Name:         name,
		LastModified: s.nextModified(""),
		Tabs:         blob,
		Version:      1,
	}

	if err = s.save(ctx, group); err != nil {
		return models.TabGroup{}, err
	}

	s.logger.Debug().
		Str("func", "groupService.Create").
		Str("group_id", group.ID).
		Int("tabs", len(tabs)).
		Msg("group created")

	return group, nil
}

func (s *groupService) List(ctx context.Context) ([]models.GroupView, error) {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}

	live := make([]models.TabGroup, 0, len(groups))
	for _, g := range groups {
		if !g.Deleted {
			live = append(live, g)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		ti, tj := live[i].ModifiedAt(), live[j].ModifiedAt()
		if ti.Equal(tj) {
			return live[i].ID < live[j].ID
		}
		return ti.After(tj)
	})

	views := make([]models.GroupView, 0, len(live))
	for _, g := range live {
		views = append(views, s.view(ctx, g))
	}
	return views, nil
}

func (s *groupService) Get(ctx context.Context, id string) (models.GroupView, error) {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return models.GroupView{}, fmt.Errorf("read groups: %w", err)
	}

	i := indexOfLive(groups, id)
	if i < 0 {
		return models.GroupView{}, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	return s.view(ctx, groups[i]), nil
}

// view decodes g's tabs. A decode failure is confined to this group.
func (s *groupService) view(ctx context.Context, g models.TabGroup) models.GroupView {
	entries, err := s.codec.Decode(ctx, g.Tabs)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "groupService.view").
			Str("group_id", g.ID).
			Msg("tabs of group are unreadable")
		return models.GroupView{TabGroup: g, DecodeErr: err}
	}
	return models.GroupView{TabGroup: g, Entries: entries}
}

func (s *groupService) Rename(ctx context.Context, id, name string) error {
	return s.update(ctx, func(groups []models.TabGroup) ([]int, error) {
		i := indexOfLive(groups, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
		}
		groups[i].Name = name
		return []int{i}, nil
	})
}

func (s *groupService) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(groups []models.TabGroup) ([]int, error) {
		i := indexOfLive(groups, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
		}
		groups[i].Deleted = true
		groups[i].Tabs = ""
		return []int{i}, nil
	})
}

func (s *groupService) EditTabTitle(ctx context.Context, id string, index int, title string) error {
	return s.update(ctx, func(groups []models.TabGroup) ([]int, error) {
		i := indexOfLive(groups, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
		}

		entries, err := s.decodeAt(ctx, groups[i], index)
		if err != nil {
			return nil, err
		}

		// entries are immutable; replace the whole entry
		old := entries[index]
		entries[index] = models.TabEntry{URL: old.URL, Title: title, Timestamp: old.Timestamp}

		if groups[i].Tabs, err = s.codec.Encode(ctx, entries); err != nil {
			return nil, fmt.Errorf("encode tabs: %w", err)
		}
		return []int{i}, nil
	})
}

func (s *groupService) RemoveTab(ctx context.Context, id string, index int) error {
	return s.update(ctx, func(groups []models.TabGroup) ([]int, error) {
		i := indexOfLive(groups, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
		}

		entries, err := s.decodeAt(ctx, groups[i], index)
		if err != nil {
			return nil, err
		}
		entries = append(entries[:index], entries[index+1:]...)

		if groups[i].Tabs, err = s.codec.Encode(ctx, entries); err != nil {
			return nil, fmt.Errorf("encode tabs: %w", err)
		}
		return []int{i}, nil
	})
}

func (s *groupService) MoveTab(ctx context.Context, fromID string, index int, toID string) error {
	if fromID == toID {
		return ErrSameGroup
	}

	return s.update(ctx, func(groups []models.TabGroup) ([]int, error) {
		from := indexOfLive(groups, fromID)
		if from < 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, fromID)
		}
		to := indexOfLive(groups, toID)
		if to < 0 {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, toID)
		}

		source, err := s.decodeAt(ctx, groups[from], index)
		if err != nil {
			return nil, err
		}
		target, err := s.codec.Decode(ctx, groups[to].Tabs)
		if err != nil {
			return nil, fmt.Errorf("decode tabs of group %s: %w", toID, err)
		}

		moved := source[index]
		source = append(source[:index], source[index+1:]...)
		target = append(target, moved)

		if groups[from].Tabs, err = s.codec.Encode(ctx, source); err != nil {
			return nil, fmt.Errorf("encode tabs: %w", err)
		}
		if groups[to].Tabs, err = s.codec.Encode(ctx, target); err != nil {
			return nil, fmt.Errorf("encode tabs: %w", err)
		}
		return []int{from, to}, nil
	})
}

func (s *groupService) Export(ctx context.Context) ([]byte, error) {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}
	if groups == nil {
		groups = []models.TabGroup{}
	}

	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode groups: %w", err)
	}
	return data, nil
}

// Import accepts either a bare array of groups or a {"groups": [...]}
// document and merges it into the local collection with MergeGroups.
func (s *groupService) Import(ctx context.Context, data []byte) (int, error) {
	imported, err := parseImport(data)
	if err != nil {
		return 0, err
	}

	_, err = s.repo.UpdateGroups(ctx, func(groups []models.TabGroup) ([]models.TabGroup, error) {
		return MergeGroups(groups, imported), nil
	})
	if err != nil {
		return 0, fmt.Errorf("save groups: %w", err)
	}

	s.logger.Info().
		Str("func", "groupService.Import").
		Int("imported", len(imported)).
		Msg("groups imported")

	return len(imported), nil
}

func parseImport(data []byte) ([]models.TabGroup, error) {
	var groups []models.TabGroup
	if err := json.Unmarshal(data, &groups); err == nil {
		return groups, nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return doc.Groups, nil
}

func (s *groupService) Stats(ctx context.Context) (models.GroupStats, error) {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return models.GroupStats{}, fmt.Errorf("read groups: %w", err)
	}

	lastSync, err := s.repo.LastSync(ctx)
	if err != nil {
		return models.GroupStats{}, fmt.Errorf("read last sync: %w", err)
	}

	stats := models.GroupStats{LastSync: lastSync}
	for _, g := range groups {
		if g.Deleted {
			stats.Tombstones++
			continue
		}
		stats.Groups++
		if entries, err := s.codec.Decode(ctx, g.Tabs); err == nil {
			stats.Tabs += len(entries)
		}
	}

	if groups == nil {
		groups = []models.TabGroup{}
	}
	raw, err := json.Marshal(groups)
	if err != nil {
		return models.GroupStats{}, fmt.Errorf("encode groups: %w", err)
	}
	stats.SizeBytes = len(raw)

	return stats, nil
}

// update runs fn on a snapshot of the collection under the service lock. fn
// returns the indexes it changed; their lastModified and version are bumped
// and the changed records are saved.
//
// Tabs are decoded and encoded by fn outside the store transaction, since
// the codec may read its key from the same store.
func (s *groupService) update(ctx context.Context, fn func(groups []models.TabGroup) ([]int, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return fmt.Errorf("read groups: %w", err)
	}

	changed, err := fn(groups)
	if err != nil {
		return err
	}

	records := make([]models.TabGroup, 0, len(changed))
	for _, i := range changed {
		groups[i].LastModified = s.nextModified(groups[i].LastModified)
		groups[i].Version++
		records = append(records, groups[i])
	}

	return s.save(ctx, records...)
}

// save writes records into the collection as currently stored. A stored
// record with a strictly later lastModified, written by another process
// since the snapshot was read, is kept instead.
func (s *groupService) save(ctx context.Context, records ...models.TabGroup) error {
	_, err := s.repo.UpdateGroups(ctx, func(groups []models.TabGroup) ([]models.TabGroup, error) {
		return applyChanges(groups, records), nil
	})
	if err != nil {
		return fmt.Errorf("save groups: %w", err)
	}
	return nil
}

// applyChanges upserts records into groups, keeping the stored order.
func applyChanges(groups, records []models.TabGroup) []models.TabGroup {
	for _, r := range records {
		i := slices.IndexFunc(groups, func(g models.TabGroup) bool { return g.ID == r.ID })
		switch {
		case i < 0:
			groups = append(groups, r)
		case !groups[i].ModifiedAt().After(r.ModifiedAt()):
			groups[i] = r
		}
	}
	return groups
}

// decodeAt decodes g's tabs and checks that index addresses one of them.
func (s *groupService) decodeAt(ctx context.Context, g models.TabGroup, index int) ([]models.TabEntry, error) {
	entries, err := s.codec.Decode(ctx, g.Tabs)
	if err != nil {
		return nil, fmt.Errorf("decode tabs of group %s: %w", g.ID, err)
	}
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("%w: %d of %d", ErrTabIndexOutOfRange, index, len(entries))
	}
	return entries, nil
}

// nextModified returns the current time, or a value just after prev when
// the clock has not moved past it.
func (s *groupService) nextModified(prev string) string {
	next := s.now().UTC().Truncate(modifiedResolution)
	if last := models.ParseTime(prev); !next.After(last) {
		next = last.Truncate(modifiedResolution).Add(modifiedResolution)
	}
	return models.FormatTime(next)
}

func indexOfLive(groups []models.TabGroup, id string) int {
	for i, g := range groups {
		if g.ID == id && !g.Deleted {
			return i
		}
	}
	return -1
}
