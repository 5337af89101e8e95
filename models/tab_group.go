// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimeLayout is the ISO-8601 layout used for every timestamp persisted by
// the application (lastModified, lastSync, tab timestamps).
const TimeLayout = time.RFC3339Nano

// TabEntry is a single saved browser tab. Entries are immutable once
// created; editing a tab replaces the whole entry.
type TabEntry struct {
	URL       string `json:"url" validate:"required"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp" validate:"omitempty,timestamp"`
}

// TabGroup is a named, timestamped collection of saved tabs.
//
// Tabs holds the codec output (compressed and optionally encrypted
// serialization of []TabEntry). Neither the merge engine nor the remote
// adapter ever interpret it.
type TabGroup struct {
	// ID is opaque, unique within a collection and never reused.
	ID string `json:"id" validate:"required"`

	// Name is the user-visible group name.
	Name string `json:"name"`

	// LastModified is the merge authority. It strictly increases on every
	// mutation of the group.
	LastModified string `json:"lastModified" validate:"required,timestamp"`

	// Tabs is the opaque encoded tab list. Tombstones carry an empty string.
	Tabs string `json:"tabs"`

	// Deleted marks a tombstone.
	Deleted bool `json:"deleted,omitempty"`

	// Version is kept for compatibility with older replicas. It is not a
	// merge input.
	Version int `json:"version,omitempty"`
}

// ModifiedAt parses LastModified. An unparsable value yields the zero time.
func (g TabGroup) ModifiedAt() time.Time {
	return ParseTime(g.LastModified)
}

// ParseTime parses an ISO-8601 timestamp, returning the zero time when the
// value cannot be parsed.
func ParseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatTime renders t in [TimeLayout] (UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// GroupView is a decoded, presentation-ready tab group.
type GroupView struct {
	TabGroup

	// Entries holds the decoded tabs. It is nil when DecodeErr is set.
	Entries []TabEntry

	// DecodeErr is set when the group's tab blob could not be decoded.
	// It affects this group only.
	DecodeErr error
}
