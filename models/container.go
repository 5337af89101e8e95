// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IndexFileName is the name of the index resource inside a container.
const IndexFileName = "index.json"

// IndexVersion is the current index format version.
const IndexVersion = 1

// ContainerFile is a single named text resource in a remote container.
type ContainerFile struct {
	Content string `json:"content"`
}

// Container is a remote container as returned by the container API.
type Container struct {
	ID          string                   `json:"id"`
	Description string                   `json:"description"`
	Public      bool                     `json:"public"`
	Files       map[string]ContainerFile `json:"files,omitempty"`
	UpdatedAt   string                   `json:"updated_at,omitempty"`
}

// CreateContainerRequest is the body of POST /containers.
type CreateContainerRequest struct {
	Description string                   `json:"description" validate:"required"`
	Public      bool                     `json:"public"`
	Files       map[string]ContainerFile `json:"files" validate:"dive,keys,min=1,max=255,endkeys"`
}

// UpdateContainerRequest is the body of PATCH /containers/{id}. A nil file
// value is serialized as JSON null and deletes that file.
type UpdateContainerRequest struct {
	Files map[string]*ContainerFile `json:"files" validate:"required,dive,keys,min=1,max=255,endkeys"`
}

// ContainerIndex is the content of the index resource: the chunk names in
// reassembly order.
type ContainerIndex struct {
	Version  int      `json:"version"`
	LastSync string   `json:"lastSync"`
	Files    []string `json:"files"`
}
