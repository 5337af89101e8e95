// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncState is the process-wide synchronization state kept in the local
// store. Every field is optional; a fresh installation has all of them nil.
type SyncState struct {
	// RemoteDocumentID is the id of the remote container, resolved once by
	// lookup-or-create and then cached.
	RemoteDocumentID *string

	// LastSync is the ISO-8601 timestamp of the last successful merge.
	LastSync *string

	// Credential is the bearer token for the remote container API.
	Credential *string

	// CryptoKey is the secret used by the encrypting codec.
	CryptoKey *string
}

// HasCredential reports whether a non-empty credential is configured.
func (s SyncState) HasCredential() bool {
	return s.Credential != nil && *s.Credential != ""
}

// Document is the logical remote document: the whole group collection.
type Document struct {
	Groups   []TabGroup `json:"groups"`
	LastSync string     `json:"lastSync,omitempty"`
}

// SyncStatus enumerates the outcomes of a synchronization attempt.
type SyncStatus string

const (
	SyncSkipped   SyncStatus = "skipped"
	SyncSucceeded SyncStatus = "succeeded"
	SyncFailed    SyncStatus = "failed"
)

const (
	// SkipReasonNoCredential is reported when no credential is configured.
	SkipReasonNoCredential = "no-credential"

	// SkipReasonInProgress is reported when another process sharing the
	// local store is synchronizing.
	SkipReasonInProgress = "in-progress"
)

// SyncOutcome is the result of one synchronization attempt.
type SyncOutcome struct {
	Status SyncStatus

	// Reason explains a skipped sync.
	Reason string

	// MergedCount is the number of groups in the merged collection.
	MergedCount int

	// LastSync is the timestamp written on success.
	LastSync string

	// Err is set for failed syncs.
	Err error
}

// Skipped builds a skipped outcome.
func Skipped(reason string) SyncOutcome {
	return SyncOutcome{Status: SyncSkipped, Reason: reason}
}

// Succeeded builds a successful outcome.
func Succeeded(mergedCount int, lastSync string) SyncOutcome {
	return SyncOutcome{Status: SyncSucceeded, MergedCount: mergedCount, LastSync: lastSync}
}

// Failed builds a failed outcome.
func Failed(err error) SyncOutcome {
	return SyncOutcome{Status: SyncFailed, Err: err}
}

// GroupStats summarises the local collection.
type GroupStats struct {
	Groups     int
	Tombstones int
	Tabs       int
	SizeBytes  int
	LastSync   string
}
