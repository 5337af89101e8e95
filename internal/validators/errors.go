package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidTabGroup         = errors.New("invalid tab group")
	ErrInvalidTabEntry         = errors.New("invalid tab entry")
	ErrInvalidContainerRequest = errors.New("invalid container request")
)
