package client

import "errors"

var (
	// ErrResetNotConfirmed is returned by reset without --yes.
	ErrResetNotConfirmed = errors.New("reset erases every group and the crypto key, rerun with --yes")

	// ErrEmptyCredential is returned by credential set when no credential
	// was given.
	ErrEmptyCredential = errors.New("credential is empty")

	// ErrInvalidIndex is returned when a tab index argument is not a
	// non-negative integer.
	ErrInvalidIndex = errors.New("tab index must be a non-negative integer")
)
