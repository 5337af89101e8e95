// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// Keys of the local store.
const (
	KeyGroups           = "groups"
	KeyLastSync         = "lastSync"
	KeyRemoteDocumentID = "remoteDocumentId"
	KeyCredential       = "credential"
	KeyCryptoKey        = "cryptoKey"
	KeySyncLease        = "syncLease"
)

// LocalStore is the client's typed view of a [KeyValueStore]: the group
// collection plus the synchronization state.
type LocalStore struct {
	kv     KeyValueStore
	now    func() time.Time
	logger *logger.Logger
}

// NewLocalStore wraps kv.
func NewLocalStore(kv KeyValueStore, logger *logger.Logger) *LocalStore {
	return &LocalStore{kv: kv, now: time.Now, logger: logger}
}

// Groups returns the stored collection, or an empty one on first run.
func (s *LocalStore) Groups(ctx context.Context) ([]models.TabGroup, error) {
	values, err := s.kv.Get(ctx, KeyGroups)
	if err != nil {
		return nil, fmt.Errorf("failed to read groups: %w", err)
	}

	return s.decodeGroups(values)
}

func (s *LocalStore) decodeGroups(values map[string][]byte) ([]models.TabGroup, error) {
	raw, ok := values[KeyGroups]
	if !ok || len(raw) == 0 {
		return []models.TabGroup{}, nil
	}

	groups := []models.TabGroup{}
	if err := json.Unmarshal(raw, &groups); err != nil {
		s.logger.Err(err).Str("func", "LocalStore.Groups").Msg("stored groups are not a JSON array")
		return nil, fmt.Errorf("%w: groups: %w", ErrCorruptValue, err)
	}
	if groups == nil {
		groups = []models.TabGroup{}
	}

	return groups, nil
}

// SaveGroups replaces the stored collection.
func (s *LocalStore) SaveGroups(ctx context.Context, groups []models.TabGroup) error {
	raw, err := marshalGroups(groups)
	if err != nil {
		return err
	}

	if err = s.kv.Set(ctx, map[string][]byte{KeyGroups: raw}); err != nil {
		return fmt.Errorf("failed to save groups: %w", err)
	}
	return nil
}

// UpdateGroups runs fn on the collection as currently stored and saves what
// it returns, both inside one store transaction. It returns the saved
// collection.
func (s *LocalStore) UpdateGroups(ctx context.Context, fn func(groups []models.TabGroup) ([]models.TabGroup, error)) ([]models.TabGroup, error) {
	saved, err := s.updateGroups(ctx, "", fn)
	if err != nil {
		return nil, fmt.Errorf("failed to update groups: %w", err)
	}
	return saved, nil
}

// SaveSyncResult folds a sync result into the collection as currently
// stored: merge receives the stored groups and returns the new collection,
// which is saved together with lastSync in one transaction. Groups written
// after the sync read its snapshot are therefore seen by merge. It returns
// the saved collection.
func (s *LocalStore) SaveSyncResult(ctx context.Context, lastSync string, merge func(current []models.TabGroup) []models.TabGroup) ([]models.TabGroup, error) {
	saved, err := s.updateGroups(ctx, lastSync, func(current []models.TabGroup) ([]models.TabGroup, error) {
		return merge(current), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save sync result: %w", err)
	}
	return saved, nil
}

func (s *LocalStore) updateGroups(ctx context.Context, lastSync string, fn func([]models.TabGroup) ([]models.TabGroup, error)) ([]models.TabGroup, error) {
	var saved []models.TabGroup

	err := s.kv.Update(ctx, []string{KeyGroups}, func(current map[string][]byte) (map[string][]byte, error) {
		groups, err := s.decodeGroups(current)
		if err != nil {
			return nil, err
		}

		if saved, err = fn(groups); err != nil {
			return nil, err
		}

		raw, err := marshalGroups(saved)
		if err != nil {
			return nil, err
		}

		entries := map[string][]byte{KeyGroups: raw}
		if lastSync != "" {
			entries[KeyLastSync] = []byte(lastSync)
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	if saved == nil {
		saved = []models.TabGroup{}
	}
	return saved, nil
}

// syncLease marks a synchronization in progress. It is shared by every
// process using the same store.
type syncLease struct {
	Owner   string    `json:"owner"`
	Expires time.Time `json:"expires"`
}

// AcquireSyncLease takes the sync lease for owner for ttl. It reports false
// when another owner holds a lease that has not expired yet. A lease left
// behind by a crashed process is taken over once it expires.
func (s *LocalStore) AcquireSyncLease(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	acquired := false
	now := s.now().UTC()

	err := s.kv.Update(ctx, []string{KeySyncLease}, func(current map[string][]byte) (map[string][]byte, error) {
		if raw, ok := current[KeySyncLease]; ok {
			var held syncLease
			if err := json.Unmarshal(raw, &held); err == nil && held.Owner != owner && now.Before(held.Expires) {
				return nil, nil
			}
		}

		raw, err := json.Marshal(syncLease{Owner: owner, Expires: now.Add(ttl)})
		if err != nil {
			return nil, err
		}
		acquired = true
		return map[string][]byte{KeySyncLease: raw}, nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to acquire sync lease: %w", err)
	}

	if !acquired {
		s.logger.Debug().Str("func", "LocalStore.AcquireSyncLease").Msg("sync lease held by another process")
	}
	return acquired, nil
}

// ReleaseSyncLease drops the lease if owner still holds it.
func (s *LocalStore) ReleaseSyncLease(ctx context.Context, owner string) error {
	err := s.kv.Update(ctx, []string{KeySyncLease}, func(current map[string][]byte) (map[string][]byte, error) {
		raw, ok := current[KeySyncLease]
		if !ok {
			return nil, nil
		}

		var held syncLease
		if err := json.Unmarshal(raw, &held); err == nil && held.Owner != owner {
			return nil, nil
		}
		return map[string][]byte{KeySyncLease: nil}, nil
	})
	if err != nil {
		return fmt.Errorf("failed to release sync lease: %w", err)
	}
	return nil
}

// State returns the synchronization state. Absent keys are nil.
func (s *LocalStore) State(ctx context.Context) (models.SyncState, error) {
	values, err := s.kv.Get(ctx, KeyRemoteDocumentID, KeyLastSync, KeyCredential, KeyCryptoKey)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("failed to read sync state: %w", err)
	}

	return models.SyncState{
		RemoteDocumentID: optional(values, KeyRemoteDocumentID),
		LastSync:         optional(values, KeyLastSync),
		Credential:       optional(values, KeyCredential),
		CryptoKey:        optional(values, KeyCryptoKey),
	}, nil
}

func (s *LocalStore) LastSync(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyLastSync)
}

func (s *LocalStore) RemoteDocumentID(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyRemoteDocumentID)
}

func (s *LocalStore) SetRemoteDocumentID(ctx context.Context, id string) error {
	return s.setString(ctx, KeyRemoteDocumentID, id)
}

func (s *LocalStore) Credential(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyCredential)
}

// SetCredential stores the bearer credential. An empty value removes it.
func (s *LocalStore) SetCredential(ctx context.Context, credential string) error {
	return s.setString(ctx, KeyCredential, credential)
}

// CryptoKey implements codec.KeyStore.
func (s *LocalStore) CryptoKey(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyCryptoKey)
}

// SetCryptoKey implements codec.KeyStore.
func (s *LocalStore) SetCryptoKey(ctx context.Context, key string) error {
	return s.setString(ctx, KeyCryptoKey, key)
}

// Reset erases every key, including the crypto key.
func (s *LocalStore) Reset(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset local store: %w", err)
	}
	s.logger.Info().Str("func", "LocalStore.Reset").Msg("local store erased")
	return nil
}

func (s *LocalStore) Close() error {
	return s.kv.Close()
}

func (s *LocalStore) getString(ctx context.Context, key string) (string, error) {
	values, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(values[key]), nil
}

func (s *LocalStore) setString(ctx context.Context, key, value string) error {
	var raw []byte
	if value != "" {
		raw = []byte(value)
	}

	if err := s.kv.Set(ctx, map[string][]byte{key: raw}); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func marshalGroups(groups []models.TabGroup) ([]byte, error) {
	if groups == nil {
		groups = []models.TabGroup{}
	}

	raw, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode groups: %w", err)
	}
	return raw, nil
}

func optional(values map[string][]byte, key string) *string {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	v := string(raw)
	return &v
}
