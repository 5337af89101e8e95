// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	bberrors "go.etcd.io/bbolt/errors"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
)

// bucketKV holds every key of the store.
var bucketKV = []byte("kv")

type boltStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltStore opens (creating when needed) a BoltDB file at path.
func NewBoltStore(path string, logger *logger.Logger) (KeyValueStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create boltdb dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		logger.Err(err).Str("func", "NewBoltStore").Str("path", path).Msg("error opening boltdb")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	logger.Debug().Str("func", "NewBoltStore").Str("path", path).Msg("opened boltdb successfully")
	return &boltStore{db: db, logger: logger}, nil
}

func (s *boltStore) Get(_ context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}

		for _, k := range keys {
			// values are only valid for the life of the transaction
			if v := bucket.Get([]byte(k)); v != nil {
				out[k] = clone(v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get keys: %w", err)
	}

	return out, nil
}

func (s *boltStore) List(_ context.Context, prefix string) (map[string][]byte, error) {
	out := make(map[string][]byte)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}

		c := bucket.Cursor()
		p := []byte(prefix)
		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			out[string(k)] = clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return out, nil
}

func (s *boltStore) Set(_ context.Context, entries map[string][]byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		return putEntries(bucket, entries)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "boltStore.Set").Msg("failed to write keys")
		return fmt.Errorf("failed to set keys: %w", err)
	}

	return nil
}

// Update runs inside a single bbolt write transaction. bbolt admits one
// writer at a time and holds an exclusive file lock, so no other process
// can write between the read and the write.
func (s *boltStore) Update(_ context.Context, keys []string, fn UpdateFunc) error {
	var fnErr error

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}

		current := make(map[string][]byte, len(keys))
		for _, k := range keys {
			if v := bucket.Get([]byte(k)); v != nil {
				current[k] = clone(v)
			}
		}

		entries, err := fn(current)
		if err != nil {
			fnErr = err
			return err
		}
		return putEntries(bucket, entries)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		s.logger.Err(err).Str("func", "boltStore.Update").Msg("failed to update keys")
		return fmt.Errorf("failed to update keys: %w", err)
	}

	return nil
}

func putEntries(bucket *bbolt.Bucket, entries map[string][]byte) error {
	for k, v := range entries {
		if v == nil {
			if err := bucket.Delete([]byte(k)); err != nil {
				return fmt.Errorf("delete %q: %w", k, err)
			}
			continue
		}
		if err := bucket.Put([]byte(k), v); err != nil {
			return fmt.Errorf("put %q: %w", k, err)
		}
	}
	return nil
}

func (s *boltStore) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketKV); err != nil && !errors.Is(err, bberrors.ErrBucketNotFound) {
			return fmt.Errorf("failed to drop kv bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketKV); err != nil {
			return fmt.Errorf("failed to create kv bucket: %w", err)
		}
		return nil
	})
}

// Close closes the database connection
func (s *boltStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
