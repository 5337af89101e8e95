// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jaychenthinkfast/OneTabCloud/internal/adapter"
	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/utils"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

const syncFlightKey = "synchronize"

// unboundedSyncLease is the lease length used when runs have no timeout. A
// bounded run holds the lease for its timeout plus syncLeaseMargin.
const (
	unboundedSyncLease = 10 * time.Minute
	syncLeaseMargin    = 30 * time.Second
)

type syncService struct {
	local       GroupRepository
	remote      adapter.DocumentStore
	credentials adapter.CredentialSource

	timeout time.Duration
	now     func() time.Time

	flight singleflight.Group

	logger *logger.Logger
}

// NewSyncService constructs the sync orchestrator. cfg.SyncTimeout bounds a
// whole run; zero disables the bound.
func NewSyncService(local GroupRepository, remote adapter.DocumentStore, credentials adapter.CredentialSource, cfg config.Workers, logger *logger.Logger) SyncService {
	return &syncService{
		local:       local,
		remote:      remote,
		credentials: credentials,
		timeout:     cfg.SyncTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

// Synchronize implements SyncService. At most one run is in progress at any
// time; callers arriving while one is in flight share its outcome. Runs of
// other processes sharing the local store are excluded by a lease in that
// store; a run that finds one held is skipped. A run is
// never aborted by its callers: cancelling ctx only stops waiting for it.
func (s *syncService) Synchronize(ctx context.Context) models.SyncOutcome {
	runCtx := context.WithoutCancel(ctx)

	ch := s.flight.DoChan(syncFlightKey, func() (any, error) {
		return s.run(runCtx), nil
	})

	select {
	case res := <-ch:
		outcome, _ := res.Val.(models.SyncOutcome)
		if res.Shared {
			s.logger.Debug().
				Str("func", "syncService.Synchronize").
				Msg("joined synchronization in flight")
		}
		return outcome
	case <-ctx.Done():
		return models.Failed(ctx.Err())
	}
}

func (s *syncService) run(ctx context.Context) models.SyncOutcome {
	// one trace id per run, sent with every container request
	traceID := uuid.NewString()
	ctx = utils.WithTraceID(ctx, traceID)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	credential, err := s.credentials.Credential(ctx)
	if err != nil {
		return s.failed("read credential", err)
	}
	if strings.TrimSpace(credential) == "" {
		s.logger.Info().
			Str("func", "syncService.run").
			Msg("no credential configured, skipping synchronization")
		return models.Skipped(models.SkipReasonNoCredential)
	}

	// the lease excludes runs of other processes sharing the local store
	acquired, err := s.local.AcquireSyncLease(ctx, traceID, s.leaseTTL())
	if err != nil {
		return s.failed("acquire sync lease", err)
	}
	if !acquired {
		s.logger.Info().
			Str("func", "syncService.run").
			Msg("another process is synchronizing, skipping")
		return models.Skipped(models.SkipReasonInProgress)
	}
	defer s.releaseLease(context.WithoutCancel(ctx), traceID)

	remoteDoc, err := s.remote.Load(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrNotConfigured) {
			return models.Skipped(models.SkipReasonNoCredential)
		}
		return s.failed("read remote document", err)
	}

	lastSync := models.FormatTime(s.now())
	local := 0

	// merged against the collection as stored now, not as it was before the
	// remote read, so groups saved meanwhile are kept and pushed
	merged, err := s.local.SaveSyncResult(ctx, lastSync, func(current []models.TabGroup) []models.TabGroup {
		local = len(current)
		return MergeGroups(current, remoteDoc.Groups)
	})
	if err != nil {
		return s.failed("write local groups", err)
	}

	if err = s.remote.Save(ctx, models.Document{Groups: merged, LastSync: lastSync}); err != nil {
		// the local half is kept; the next successful run converges both sides
		s.logger.Warn().
			Err(err).
			Str("func", "syncService.run").
			Int("merged", len(merged)).
			Msg("local replica updated but remote write failed")
		return s.failed("write remote document", err)
	}

	s.logger.Info().
		Str("func", "syncService.run").
		Int("local", local).
		Int("remote", len(remoteDoc.Groups)).
		Int("merged", len(merged)).
		Str("last_sync", lastSync).
		Msg("synchronization succeeded")

	return models.Succeeded(len(merged), lastSync)
}

func (s *syncService) leaseTTL() time.Duration {
	if s.timeout > 0 {
		return s.timeout + syncLeaseMargin
	}
	return unboundedSyncLease
}

func (s *syncService) releaseLease(ctx context.Context, owner string) {
	if err := s.local.ReleaseSyncLease(ctx, owner); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "syncService.run").
			Msg("failed to release sync lease, it expires on its own")
	}
}

func (s *syncService) failed(step string, err error) models.SyncOutcome {
	err = fmt.Errorf("%s: %w", step, err)
	s.logger.Err(err).
		Str("func", "syncService.run").
		Msg("synchronization failed")
	return models.Failed(err)
}
