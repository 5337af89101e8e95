// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	items  map[string][]byte
	closed bool
}

// NewMemoryStore returns a process-local [KeyValueStore]. Its contents are
// lost when the process exits.
func NewMemoryStore() KeyValueStore {
	return &memoryStore{items: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, keys ...string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := s.items[k]; ok {
			out[k] = clone(v)
		}
	}
	return out, nil
}

func (s *memoryStore) List(_ context.Context, prefix string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	out := make(map[string][]byte)
	for k, v := range s.items {
		if strings.HasPrefix(k, prefix) {
			out[k] = clone(v)
		}
	}
	return out, nil
}

func (s *memoryStore) Set(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	for k, v := range entries {
		if v == nil {
			delete(s.items, k)
			continue
		}
		s.items[k] = clone(v)
	}
	return nil
}

func (s *memoryStore) Update(_ context.Context, keys []string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	current := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := s.items[k]; ok {
			current[k] = clone(v)
		}
	}

	entries, err := fn(current)
	if err != nil {
		return err
	}

	for k, v := range entries {
		if v == nil {
			delete(s.items, k)
			continue
		}
		s.items[k] = clone(v)
	}
	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.items = make(map[string][]byte)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
