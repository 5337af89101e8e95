// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// encryptCodec is the encrypting [Codec]: JSON, zlib, AES-256-GCM, base64.
type encryptCodec struct {
	keys   KeyStore
	logger *logger.Logger

	mu     sync.Mutex
	secret string
	key    []byte
}

// NewEncryptCodec returns the encrypting [Codec]. The secret is read from
// keys on first use; Encode generates and persists one when none is stored.
func NewEncryptCodec(keys KeyStore, logger *logger.Logger) Codec {
	return &encryptCodec{keys: keys, logger: logger}
}

func (c *encryptCodec) Encode(ctx context.Context, entries []models.TabEntry) (string, error) {
	key, err := c.resolveKey(ctx, true)
	if err != nil {
		return "", err
	}

	compressed, err := marshalDeflate(entries)
	if err != nil {
		return "", err
	}

	blob, err := seal(key, compressed)
	if err != nil {
		return "", fmt.Errorf("encrypt tabs: %w", err)
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *encryptCodec) Decode(ctx context.Context, blob string) ([]models.TabEntry, error) {
	if blob == "" {
		return []models.TabEntry{}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, decodeErr(StageBase64, err)
	}

	key, err := c.resolveKey(ctx, false)
	if err != nil {
		return nil, decodeErr(StageDecrypt, err)
	}

	compressed, err := open(key, raw)
	if err != nil {
		return nil, decodeErr(StageDecrypt, err)
	}
	return inflateUnmarshal(compressed)
}

// resolveKey returns the derived AES key, loading the secret from the key
// store. When create is set and no secret is stored, a new one is generated
// and persisted before use.
func (c *encryptCodec) resolveKey(ctx context.Context, create bool) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	secret, err := c.keys.CryptoKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("load crypto key: %w", err)
	}

	if secret == "" {
		if !create {
			return nil, ErrMissingKey
		}
		if secret, err = GenerateKey(); err != nil {
			return nil, err
		}
		if err = c.keys.SetCryptoKey(ctx, secret); err != nil {
			return nil, fmt.Errorf("store crypto key: %w", err)
		}
		c.logger.Warn().
			Str("func", "encryptCodec.resolveKey").
			Msg("generated a new crypto key; losing it makes encrypted tab groups unrecoverable")
	}

	if secret == c.secret && c.key != nil {
		return c.key, nil
	}

	key, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}
	c.secret, c.key = secret, key
	return key, nil
}
