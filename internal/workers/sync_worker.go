// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// DefaultSyncInterval is used when no positive interval is configured.
const DefaultSyncInterval = 10 * time.Minute

type syncWorker struct {
	syncer   Synchronizer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a worker that calls syncer.Synchronize on a ticker.
// The worker is idle until Start is called. A zero or negative interval
// defaults to DefaultSyncInterval.
func NewSyncWorker(syncer Synchronizer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &syncWorker{syncer: syncer, interval: interval, logger: logger}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that synchronizes every interval until ctx is
// cancelled or Stop is called.
func (w *syncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().
		Str("func", "syncWorker.Start").
		Dur("interval", w.interval).
		Msg("periodic synchronization started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.tick(loopCtx)
			}
		}
	}()
}

func (w *syncWorker) tick(ctx context.Context) {
	outcome := w.syncer.Synchronize(ctx)

	event := w.logger.Debug()
	if outcome.Status == models.SyncFailed {
		event = w.logger.Warn().Err(outcome.Err)
	}
	event.
		Str("func", "syncWorker.tick").
		Str("status", string(outcome.Status)).
		Str("reason", outcome.Reason).
		Int("merged", outcome.MergedCount).
		Msg("periodic synchronization finished")
}

// Stop implements Worker. It cancels the loop's context and blocks until the
// goroutine has exited. Safe to call when the worker is not running.
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
