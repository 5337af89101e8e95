// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec turns tab lists into opaque, size-efficient strings and back.
//
// Two interchangeable variants implement [Codec]:
//   - compress-only: JSON -> zlib deflate -> base64;
//   - encrypt:       JSON -> zlib deflate -> AES-256-GCM -> base64.
//
// The encrypting variant uses a process-wide secret obtained from a
// [KeyStore]. The secret is generated on first use when absent and persisted
// for reuse. Losing it makes every blob encrypted with it permanently
// unrecoverable.
//
// Decode failures are reported as [*DecodeError] so that callers can treat
// one unreadable group as non-fatal for the rest of the collection.
package codec

import (
	"context"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encodes a tab list into an opaque string and decodes it back.
// Decode(Encode(x)) must reproduce x exactly.
type Codec interface {
	// Encode serializes entries into the codec's wire string.
	Encode(ctx context.Context, entries []models.TabEntry) (string, error)

	// Decode reverses Encode. Malformed input returns a *DecodeError.
	Decode(ctx context.Context, blob string) ([]models.TabEntry, error)
}

// KeyStore persists the encrypting codec's secret.
type KeyStore interface {
	// CryptoKey returns the stored secret, or "" when none is stored.
	CryptoKey(ctx context.Context) (string, error)

	// SetCryptoKey persists key for reuse by later processes.
	SetCryptoKey(ctx context.Context, key string) error
}
