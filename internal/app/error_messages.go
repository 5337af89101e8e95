// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// container server handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording consistent across the
// API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON or
	// exceeds the size limit.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded request body cannot be
	// inflated.
	MsgInvalidGzip = "invalid gzip data"

	// MsgErrorListingContainers is returned when the container list cannot
	// be read.
	MsgErrorListingContainers = "error listing containers"

	// MsgErrorCreatingContainer is returned when a new container cannot be
	// persisted.
	MsgErrorCreatingContainer = "error creating container"

	// MsgErrorGettingContainer is returned when a container cannot be read,
	// including when it does not exist.
	MsgErrorGettingContainer = "error getting container"

	// MsgErrorUpdatingContainer is returned when a PATCH cannot be applied.
	MsgErrorUpdatingContainer = "error updating container"
)
