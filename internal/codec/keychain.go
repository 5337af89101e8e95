// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// secretLen is the size of a generated secret before base64 encoding.
	secretLen = 32

	// aesKeyLen selects AES-256.
	aesKeyLen = 32
)

// hkdfInfo binds derived keys to this use so the same secret never yields
// the same key in another context.
var hkdfInfo = []byte("onetabcloud/tabs/aes-256-gcm/v1")

// GenerateKey returns a new random secret, base64 (standard) encoded, ready
// to be stored as the process-wide crypto key.
func GenerateKey() (string, error) {
	secret := make([]byte, secretLen)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return "", fmt.Errorf("generate crypto key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(secret), nil
}

// deriveKey expands the stored secret into an AES-256 key with HKDF-SHA256.
// Any non-empty string is accepted, so a user-supplied passphrase works as
// well as a generated key.
func deriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, ErrMissingKey
	}

	key := make([]byte, aesKeyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, hkdfInfo), key); err != nil {
		return nil, fmt.Errorf("derive crypto key: %w", err)
	}
	return key, nil
}

// seal encrypts plain with AES-256-GCM. The random nonce is prepended so
// that open can split it out: blob = nonce || ciphertext.
func seal(key, plain []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plain, nil), nil
}

// open reverses seal. An authentication failure almost always means the
// blob was encrypted with a different key.
func open(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plain, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
