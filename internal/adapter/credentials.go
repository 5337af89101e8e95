package adapter

import (
	"context"
	"strings"
)

type credentialChain struct {
	override string
	stored   CredentialSource
}

// WithCredentialOverride returns a source that yields override when it is
// non-blank and falls back to stored otherwise. It lets a credential from
// the environment take precedence over the one saved locally.
func WithCredentialOverride(override string, stored CredentialSource) CredentialSource {
	return credentialChain{override: strings.TrimSpace(override), stored: stored}
}

func (c credentialChain) Credential(ctx context.Context) (string, error) {
	if c.override != "" {
		return c.override, nil
	}
	if c.stored == nil {
		return "", nil
	}
	return c.stored.Credential(ctx)
}
