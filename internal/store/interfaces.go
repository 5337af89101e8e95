// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

// UpdateFunc receives the current values of the keys passed to Update
// (absent keys are missing from the map) and returns the entries to write.
type UpdateFunc func(current map[string][]byte) (map[string][]byte, error)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistence primitive every backend implements.
//
// Values are opaque bytes. A key that does not exist is simply absent from
// the maps returned by Get and List. Set applies all of its entries
// atomically; a nil value deletes the key.
//
// Update is the read-modify-write primitive: it reads keys and applies the
// entries fn returns in one transaction, and no other write, from this or
// another process sharing the database, lands in between. fn must not call
// back into the store. An error from fn aborts the transaction.
type KeyValueStore interface {
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)
	List(ctx context.Context, prefix string) (map[string][]byte, error)
	Set(ctx context.Context, entries map[string][]byte) error
	Update(ctx context.Context, keys []string, fn UpdateFunc) error
	Clear(ctx context.Context) error
	Close() error
}
