// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and
// `envPrefix` tags of [StructuredConfig], for example REMOTE_BASE_URL or
// SERVER_CREDENTIAL. Durations use Go syntax ("30s", "10m").
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
