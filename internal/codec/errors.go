// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned when an encrypted blob must be decoded but no
	// secret is stored.
	ErrMissingKey = errors.New("crypto key is not configured")

	// ErrCiphertextTooShort is returned when the decoded blob is shorter than
	// the GCM nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrUnknownMode is returned by [New] for an unsupported codec mode.
	ErrUnknownMode = errors.New("unknown codec mode")
)

// Decode stages reported by [DecodeError].
const (
	StageBase64  = "base64"
	StageDecrypt = "decrypt"
	StageInflate = "inflate"
	StageJSON    = "json"
)

// DecodeError reports a blob that could not be turned back into tabs.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode tabs (%s): %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(stage string, err error) error {
	return &DecodeError{Stage: stage, Err: err}
}
