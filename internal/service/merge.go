// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// MergeGroups reconciles two independently mutated collections. It is a
// pure function.
//
// The result holds every id present on either side, mapped to exactly one
// record: the one with the strictly later lastModified, or the local one
// when both timestamps denote the same instant. Timestamps are compared as
// instants, and one that cannot be parsed counts as the zero time. Tombstones
// take part like live records. The version field is ignored.
//
// Records sharing an id within one side are first reduced with the same
// rule, keeping the first seen on equal timestamps. The result is sorted by
// id.
func MergeGroups(local, remote []models.TabGroup) []models.TabGroup {
	merged := make(map[string]models.TabGroup, len(local)+len(remote))

	for _, g := range latestByID(remote) {
		merged[g.ID] = g
	}
	for _, g := range latestByID(local) {
		current, ok := merged[g.ID]
		if !ok || !current.ModifiedAt().After(g.ModifiedAt()) {
			merged[g.ID] = g
		}
	}

	out := make([]models.TabGroup, 0, len(merged))
	for _, g := range merged {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// latestByID keeps one record per id, preferring the strictly later one.
func latestByID(groups []models.TabGroup) []models.TabGroup {
	seen := make(map[string]int, len(groups))
	out := make([]models.TabGroup, 0, len(groups))

	for _, g := range groups {
		i, ok := seen[g.ID]
		if !ok {
			seen[g.ID] = len(out)
			out = append(out, g)
			continue
		}
		if g.ModifiedAt().After(out[i].ModifiedAt()) {
			out[i] = g
		}
	}
	return out
}
