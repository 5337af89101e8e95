// Package server runs the self-hosted container API.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
