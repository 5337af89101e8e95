// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
)

// Codec modes accepted by [New].
const (
	ModeCompress = "compress"
	ModeEncrypt  = "encrypt"
)

// New returns the [Codec] for mode. An empty mode selects compress-only.
func New(mode string, keys KeyStore, logger *logger.Logger) (Codec, error) {
	switch mode {
	case "", ModeCompress:
		return NewCompressCodec(), nil
	case ModeEncrypt:
		return NewEncryptCodec(keys, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
