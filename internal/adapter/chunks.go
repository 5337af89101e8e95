// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// ChunkLimit is the maximum size in bytes of one data chunk.
const ChunkLimit = 900 * 1024

const (
	chunkPrefix = "data-part"
	chunkSuffix = ".json"
)

// ChunkName returns the file name of chunk k (1-based).
func ChunkName(k int) string {
	return chunkPrefix + strconv.Itoa(k) + chunkSuffix
}

// isChunkName reports whether name is a data chunk file.
func isChunkName(name string) bool {
	if !strings.HasPrefix(name, chunkPrefix) || !strings.HasSuffix(name, chunkSuffix) {
		return false
	}
	n := strings.TrimSuffix(strings.TrimPrefix(name, chunkPrefix), chunkSuffix)
	k, err := strconv.Atoi(n)
	return err == nil && k > 0
}

// SplitChunks cuts s into contiguous pieces of at most limit bytes whose
// concatenation is s. Cuts never fall inside a UTF-8 sequence. The empty
// string yields no chunks.
func SplitChunks(s string, limit int) []string {
	if limit < utf8.UTFMax {
		limit = utf8.UTFMax
	}

	chunks := make([]string, 0, len(s)/limit+1)
	for len(s) > 0 {
		if len(s) <= limit {
			chunks = append(chunks, s)
			break
		}

		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		if cut == 0 {
			// no rune start within limit: invalid UTF-8, cut at the byte limit
			cut = limit
		}

		chunks = append(chunks, s[:cut])
		s = s[cut:]
	}
	return chunks
}

// EncodedDocument is a document laid out as container files.
type EncodedDocument struct {
	// Chunks maps chunk names to their content.
	Chunks map[string]string
	// Index lists the chunk names in reassembly order.
	Index models.ContainerIndex
}

// EncodeDocument serializes doc and splits it into chunks of at most limit
// bytes. lastSync is written into the index.
func EncodeDocument(doc models.Document, lastSync string, limit int) (EncodedDocument, error) {
	if doc.Groups == nil {
		doc.Groups = []models.TabGroup{}
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return EncodedDocument{}, fmt.Errorf("encode document: %w", err)
	}

	parts := SplitChunks(string(payload), limit)
	enc := EncodedDocument{
		Chunks: make(map[string]string, len(parts)),
		Index: models.ContainerIndex{
			Version:  models.IndexVersion,
			LastSync: lastSync,
			Files:    make([]string, 0, len(parts)),
		},
	}
	for i, part := range parts {
		name := ChunkName(i + 1)
		enc.Chunks[name] = part
		enc.Index.Files = append(enc.Index.Files, name)
	}

	return enc, nil
}

// EmptyIndex returns the index written into a freshly created container.
func EmptyIndex(lastSync string) models.ContainerIndex {
	return models.ContainerIndex{Version: models.IndexVersion, LastSync: lastSync, Files: []string{}}
}

// MarshalIndex renders idx as the content of the index file.
func MarshalIndex(idx models.ContainerIndex) (string, error) {
	if idx.Files == nil {
		idx.Files = []string{}
	}
	raw, err := json.Marshal(idx)
	if err != nil {
		return "", fmt.Errorf("encode index: %w", err)
	}
	return string(raw), nil
}

// DecodeDocument reassembles the document stored in files.
//
// Recoverable problems do not fail the decode; they are returned as
// warnings: a missing or unreadable index yields an empty document and a
// *[MalformedIndexError], a missing or blank chunk is skipped with a
// *[ChunkGapError]. A reassembled payload that is not valid JSON fails with
// [ErrMalformedDocument].
func DecodeDocument(files map[string]models.ContainerFile) (models.Document, []error, error) {
	empty := models.Document{Groups: []models.TabGroup{}}

	indexFile, ok := files[models.IndexFileName]
	if !ok || strings.TrimSpace(indexFile.Content) == "" {
		return empty, []error{&MalformedIndexError{Reason: "index is missing"}}, nil
	}

	var index models.ContainerIndex
	if err := json.Unmarshal([]byte(indexFile.Content), &index); err != nil {
		return empty, []error{&MalformedIndexError{Reason: "index is not valid JSON", Err: err}}, nil
	}

	var (
		warnings []error
		buf      strings.Builder
	)
	for _, name := range index.Files {
		chunk, ok := files[name]
		if !ok || strings.TrimSpace(chunk.Content) == "" {
			warnings = append(warnings, &ChunkGapError{Name: name})
			continue
		}
		buf.WriteString(chunk.Content)
	}

	doc, err := parseDocument([]byte(buf.String()))
	if err != nil {
		return empty, warnings, err
	}
	return doc, warnings, nil
}

// parseDocument accepts the current {"groups":[...]} shape and the older
// bare array of groups. Any other JSON value is an empty document.
func parseDocument(payload []byte) (models.Document, error) {
	empty := models.Document{Groups: []models.TabGroup{}}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return empty, nil
	}
	if !json.Valid(payload) {
		return empty, ErrMalformedDocument
	}

	switch payload[0] {
	case '[':
		var groups []models.TabGroup
		if err := json.Unmarshal(payload, &groups); err != nil {
			return empty, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		if groups == nil {
			groups = []models.TabGroup{}
		}
		return models.Document{Groups: groups}, nil

	case '{':
		var raw struct {
			Groups   json.RawMessage `json:"groups"`
			LastSync string          `json:"lastSync"`
		}
		if err := json.Unmarshal(payload, &raw); err != nil {
			return empty, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		groupsJSON := bytes.TrimSpace(raw.Groups)
		if len(groupsJSON) == 0 || groupsJSON[0] != '[' {
			return empty, nil
		}

		var groups []models.TabGroup
		if err := json.Unmarshal(groupsJSON, &groups); err != nil {
			return empty, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		if groups == nil {
			groups = []models.TabGroup{}
		}
		return models.Document{Groups: groups, LastSync: raw.LastSync}, nil

	default:
		return empty, nil
	}
}
