// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jaychenthinkfast/OneTabCloud/internal/adapter"
	"github.com/jaychenthinkfast/OneTabCloud/internal/codec"
	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/mock"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

// newTestSyncSvc builds a syncService over mocks with a fixed clock.
func newTestSyncSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*syncService,
	*mock.MockGroupRepository,
	*mock.MockDocumentStore,
	*mock.MockCredentialSource,
) {
	t.Helper()
	repo := mock.NewMockGroupRepository(ctrl)
	remote := mock.NewMockDocumentStore(ctrl)
	creds := mock.NewMockCredentialSource(ctrl)

	svc := NewSyncService(repo, remote, creds, config.Workers{SyncTimeout: time.Minute}, logger.Nop()).(*syncService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, remote, creds
}

// allowLease lets every run take and release the sync lease.
func allowLease(repo *mock.MockGroupRepository) {
	repo.EXPECT().AcquireSyncLease(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	repo.EXPECT().ReleaseSyncLease(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// mergeInto makes SaveSyncResult apply the merge to stored, the collection
// as found in the store at write time.
func mergeInto(stored []models.TabGroup) func(context.Context, string, func([]models.TabGroup) []models.TabGroup) ([]models.TabGroup, error) {
	return func(_ context.Context, _ string, merge func([]models.TabGroup) []models.TabGroup) ([]models.TabGroup, error) {
		return merge(stored), nil
	}
}

// ── Synchronize ──────────────────────────────────────────────────────────────

func TestSyncService_NoCredential_Skips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, creds := newTestSyncSvc(t, ctrl)
	creds.EXPECT().Credential(gomock.Any()).Return("", nil)
	// no repository or remote calls are expected

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncSkipped, outcome.Status)
	assert.Equal(t, models.SkipReasonNoCredential, outcome.Reason)
}

func TestSyncService_CredentialError_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, creds := newTestSyncSvc(t, ctrl)
	creds.EXPECT().Credential(gomock.Any()).Return("", errors.New("store closed"))

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorContains(t, outcome.Err, "store closed")
}

func TestSyncService_Success_MergesAndWritesLocalThenRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)

	local := []models.TabGroup{
		group("a", "2024-01-01T00:00:00Z", "local-a"),
		group("shared", "2024-01-05T00:00:00Z", "local-shared"),
	}
	remoteGroups := []models.TabGroup{
		group("b", "2024-01-01T00:00:00Z", "remote-b"),
		group("shared", "2024-01-04T00:00:00Z", "remote-shared"),
	}
	merged := MergeGroups(local, remoteGroups)
	lastSync := models.FormatTime(fixedNow)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	gomock.InOrder(
		repo.EXPECT().AcquireSyncLease(gomock.Any(), gomock.Any(), time.Minute+syncLeaseMargin).Return(true, nil),
		remote.EXPECT().Load(gomock.Any()).Return(models.Document{Groups: remoteGroups}, nil),
		repo.EXPECT().SaveSyncResult(gomock.Any(), lastSync, gomock.Any()).DoAndReturn(mergeInto(local)),
		remote.EXPECT().Save(gomock.Any(), models.Document{Groups: merged, LastSync: lastSync}).Return(nil),
		repo.EXPECT().ReleaseSyncLease(gomock.Any(), gomock.Any()).Return(nil),
	)

	outcome := svc.Synchronize(context.Background())

	require.Equal(t, models.SyncSucceeded, outcome.Status, "err: %v", outcome.Err)
	assert.Equal(t, 3, outcome.MergedCount)
	assert.Equal(t, lastSync, outcome.LastSync)
	assert.Equal(t, "local-shared", merged[2].Name)
}

func TestSyncService_GroupSavedDuringRemoteReadIsKept(t *testing.T) {
	ctx := context.Background()
	local := store.NewLocalStore(store.NewMemoryStore(), logger.Nop())
	groups := NewGroupService(local, codec.NewCompressCodec(), logger.Nop())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := mock.NewMockDocumentStore(ctrl)
	creds := mock.NewMockCredentialSource(ctrl)
	svc := NewSyncService(local, remote, creds, config.Workers{SyncTimeout: time.Minute}, logger.Nop())

	loading := make(chan struct{})
	release := make(chan struct{})
	var pushed models.Document

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (models.Document, error) {
		close(loading)
		<-release
		return models.Document{Groups: []models.TabGroup{group("r", "2024-01-01T00:00:00Z", "remote")}}, nil
	})
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc models.Document) error {
		pushed = doc
		return nil
	})

	done := make(chan models.SyncOutcome)
	go func() { done <- svc.Synchronize(ctx) }()

	<-loading
	created, err := groups.Create(ctx, "Saved meanwhile", []models.TabEntry{{URL: "https://go.dev"}})
	require.NoError(t, err)
	close(release)

	outcome := <-done
	require.Equal(t, models.SyncSucceeded, outcome.Status, "err: %v", outcome.Err)
	assert.Equal(t, 2, outcome.MergedCount)

	stored, err := local.Groups(ctx)
	require.NoError(t, err)
	assert.Contains(t, byID(stored), created.ID)
	assert.Contains(t, byID(stored), "r")
	assert.Contains(t, byID(pushed.Groups), created.ID)
}

func TestSyncService_LeaseHeldElsewhere_Skips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	repo.EXPECT().AcquireSyncLease(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().ReleaseSyncLease(gomock.Any(), gomock.Any()).Times(0)
	remote.EXPECT().Load(gomock.Any()).Times(0)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncSkipped, outcome.Status)
	assert.Equal(t, models.SkipReasonInProgress, outcome.Reason)
}

func TestSyncService_LeaseError_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, creds := newTestSyncSvc(t, ctrl)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	repo.EXPECT().AcquireSyncLease(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, store.ErrStoreClosed)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, store.ErrStoreClosed)
}

func TestSyncService_LeaseReleasedAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)

	var owner string
	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	repo.EXPECT().AcquireSyncLease(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o string, _ time.Duration) (bool, error) {
			owner = o
			return true, nil
		})
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, adapter.ErrMalformedDocument)
	repo.EXPECT().ReleaseSyncLease(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o string) error {
			assert.Equal(t, owner, o)
			return errors.New("disk full")
		})

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, adapter.ErrMalformedDocument)
}

func TestSyncService_RemoteReadFailure_KeepsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)
	remoteErr := &adapter.RemoteError{Op: "get container", StatusCode: 401, Err: adapter.ErrUnauthorized}

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, remoteErr)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, adapter.ErrUnauthorized)

	var re *adapter.RemoteError
	assert.ErrorAs(t, outcome.Err, &re)
}

func TestSyncService_MalformedRemoteDocument_KeepsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, adapter.ErrMalformedDocument)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, adapter.ErrMalformedDocument)
}

func TestSyncService_NotConfiguredFromAdapter_Skips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, adapter.ErrNotConfigured)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncSkipped, outcome.Status)
}

func TestSyncService_CorruptLocalGroups_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, nil)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrCorruptValue)
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, store.ErrCorruptValue)
}

func TestSyncService_LocalWriteFailure_SkipsRemoteWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, nil)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorContains(t, outcome.Err, "disk full")
}

func TestSyncService_RemoteWriteFailure_IsFailedWithLocalKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)
	writeErr := &adapter.RemoteError{Op: "update container", StatusCode: 502, Err: adapter.ErrBadGateway}

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{Groups: []models.TabGroup{group("r", "2024-01-01T00:00:00Z", "r")}}, nil)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mergeInto(nil))
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(writeErr)

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, adapter.ErrBadGateway)
}

func TestSyncService_TimeoutBoundsTheRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)
	svc.timeout = 20 * time.Millisecond

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.Document, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		<-ctx.Done()
		return models.Document{}, &adapter.RemoteError{Op: "get container", Err: ctx.Err()}
	})

	outcome := svc.Synchronize(context.Background())

	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, context.DeadlineExceeded)
}

func TestSyncService_CallerCancelDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	release := make(chan struct{})
	finished := make(chan struct{})

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil)
	remote.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.Document, error) {
		<-release
		assert.NoError(t, ctx.Err(), "run context must outlive the caller")
		return models.Document{}, nil
	})
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mergeInto(nil))
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Document) error {
		close(finished)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := svc.Synchronize(ctx)
	assert.Equal(t, models.SyncFailed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, context.Canceled)

	close(release)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("synchronization did not run to completion")
	}
}

// ── Single flight ────────────────────────────────────────────────────────────

func TestSyncService_ConcurrentCallsAreCoalesced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	var loads atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil).Times(1)
	remote.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (models.Document, error) {
		loads.Add(1)
		close(entered)
		<-release
		return models.Document{}, nil
	}).Times(1)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mergeInto(nil)).Times(1)
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	const callers = 8
	outcomes := make([]models.SyncOutcome, callers)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		outcomes[0] = svc.Synchronize(context.Background())
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = svc.Synchronize(context.Background())
		}(i)
	}

	// give the joiners time to attach to the flight in progress
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for i, o := range outcomes {
		assert.Equal(t, models.SyncSucceeded, o.Status, "caller %d", i)
		assert.Equal(t, outcomes[0].LastSync, o.LastSync)
	}
}

func TestSyncService_SequentialCallsRunEachTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, remote, creds := newTestSyncSvc(t, ctrl)
	allowLease(repo)

	creds.EXPECT().Credential(gomock.Any()).Return("token", nil).Times(2)
	remote.EXPECT().Load(gomock.Any()).Return(models.Document{}, nil).Times(2)
	repo.EXPECT().SaveSyncResult(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mergeInto(nil)).Times(2)
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.Equal(t, models.SyncSucceeded, svc.Synchronize(context.Background()).Status)
	assert.Equal(t, models.SyncSucceeded, svc.Synchronize(context.Background()).Status)
}
