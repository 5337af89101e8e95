// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// compressCodec is the compress-only [Codec]: JSON, zlib, base64.
type compressCodec struct{}

// NewCompressCodec returns the compress-only [Codec].
func NewCompressCodec() Codec {
	return compressCodec{}
}

func (compressCodec) Encode(_ context.Context, entries []models.TabEntry) (string, error) {
	compressed, err := marshalDeflate(entries)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(compressed), nil
}

func (compressCodec) Decode(_ context.Context, blob string) ([]models.TabEntry, error) {
	if blob == "" {
		return []models.TabEntry{}, nil
	}

	compressed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, decodeErr(StageBase64, err)
	}
	return inflateUnmarshal(compressed)
}

// marshalDeflate JSON-encodes entries and compresses the result as a zlib
// stream. A nil slice is encoded as an empty list.
func marshalDeflate(entries []models.TabEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.TabEntry{}
	}

	plain, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal tabs: %w", err)
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err = w.Write(plain); err != nil {
		return nil, fmt.Errorf("deflate tabs: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("deflate tabs: %w", err)
	}

	return buf.Bytes(), nil
}

func inflateUnmarshal(compressed []byte) ([]models.TabEntry, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, decodeErr(StageInflate, err)
	}
	defer r.Close()

	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErr(StageInflate, err)
	}

	entries := []models.TabEntry{}
	if err = json.Unmarshal(plain, &entries); err != nil {
		return nil, decodeErr(StageJSON, err)
	}
	if entries == nil {
		entries = []models.TabEntry{}
	}

	return entries, nil
}
