// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the sync engine to the remote container API.
//
// [ContainerAPI] is the thin REST client ([NewContainerClient]). On top of it
// [RemoteStore] implements [DocumentStore]: it resolves the installation's
// container by lookup-or-create and moves whole documents through the
// chunking protocol in chunks.go, so documents larger than one file of the
// API still fit.
//
// Every failed call surfaces as *[RemoteError]; the sentinel values in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContainerAPI is the REST surface of the remote store.
type ContainerAPI interface {
	// ListContainers returns the containers visible to the credential.
	ListContainers(ctx context.Context) ([]models.Container, error)

	// CreateContainer creates a private container holding files.
	CreateContainer(ctx context.Context, description string, files map[string]models.ContainerFile) (models.Container, error)

	// GetContainer returns the container with all its files.
	GetContainer(ctx context.Context, id string) (models.Container, error)

	// UpdateContainer writes files into the container. A nil file deletes
	// that name; names not mentioned are left untouched.
	UpdateContainer(ctx context.Context, id string, files map[string]*models.ContainerFile) error
}

// DocumentStore loads and saves the logical remote document.
type DocumentStore interface {
	Load(ctx context.Context) (models.Document, error)
	Save(ctx context.Context, doc models.Document) error
}

// CredentialSource yields the bearer credential, "" when none is set.
type CredentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// ContainerIDStore caches the id of the resolved container.
type ContainerIDStore interface {
	RemoteDocumentID(ctx context.Context) (string, error)
	SetRemoteDocumentID(ctx context.Context, id string) error
}
