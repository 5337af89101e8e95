// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line and blocks until the command exits.
	Run() error
}

// StateStore is the part of the local store the state commands touch
// directly: credential, crypto key and reset.
type StateStore interface {
	State(ctx context.Context) (models.SyncState, error)

	// SetCredential stores the bearer credential. An empty value removes it.
	SetCredential(ctx context.Context, credential string) error

	CryptoKey(ctx context.Context) (string, error)

	// Reset erases the whole local store.
	Reset(ctx context.Context) error
}
