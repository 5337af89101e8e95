package adapter

import (
	"errors"
	"fmt"
)

// Sentinels carried inside [RemoteError]; match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrMalformedResponse   = errors.New("malformed response body")
)

var (
	// ErrNotConfigured is returned before any request is made when no
	// credential is available.
	ErrNotConfigured = errors.New("remote credential is not configured")

	// ErrMalformedDocument is returned when the reassembled chunks are not
	// valid JSON. Syncing on top of it would overwrite the remote copy with
	// the local one, so the attempt is aborted instead.
	ErrMalformedDocument = errors.New("remote document is not valid JSON")
)

// RemoteError reports a failed container API call: a non-2xx response, a
// transport failure or a timeout.
type RemoteError struct {
	// Op names the call, e.g. "get container".
	Op string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("remote %s: status %d: %v", e.Op, e.StatusCode, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// MalformedIndexError is a recovered condition: the container index was
// missing or unreadable and the document was treated as empty.
type MalformedIndexError struct {
	Reason string
	Err    error
}

func (e *MalformedIndexError) Error() string {
	if e.Err == nil {
		return "malformed container index: " + e.Reason
	}
	return fmt.Sprintf("malformed container index: %s: %v", e.Reason, e.Err)
}

func (e *MalformedIndexError) Unwrap() error {
	return e.Err
}

// ChunkGapError is a recovered condition: a chunk named by the index was
// missing or empty and was skipped during reassembly.
type ChunkGapError struct {
	Name string
}

func (e *ChunkGapError) Error() string {
	return fmt.Sprintf("chunk %q listed in index is missing or empty", e.Name)
}
