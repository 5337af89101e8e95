// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the onetabcloud command line.
//
// Every command is a cobra subcommand of the root built by [NewApp]. The
// configuration flags are registered once on the root's persistent flag set;
// a command that needs the local store opens a [Runtime] through the
// [Opener] and closes it when it returns. Mutating commands finish with a
// sync that is skipped silently when no credential is configured.
package client
