package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jaychenthinkfast/OneTabCloud/internal/codec"
	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/mock"
	"github.com/jaychenthinkfast/OneTabCloud/internal/service"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// testEnv runs commands against an in-memory local store and a mocked
// sync service.
type testEnv struct {
	local *store.LocalStore
	sync  *mock.MockSyncService
	state StateStore

	opened, closed int
	openErr        error
	copied         string
	stdin          string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	local := store.NewLocalStore(store.NewMemoryStore(), logger.Nop())
	return &testEnv{
		local: local,
		sync:  mock.NewMockSyncService(ctrl),
		state: local,
	}
}

func (e *testEnv) open(_ context.Context, _ *config.StructuredConfig) (*Runtime, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	e.opened++

	groups := service.NewGroupValidationService().Wrap(
		service.NewGroupService(e.local, codec.NewCompressCodec(), logger.Nop()),
	)
	return &Runtime{
		Groups:  groups,
		Sync:    e.sync,
		State:   e.state,
		Workers: config.Workers{SyncInterval: 10 * time.Millisecond},
		Logger:  logger.Nop(),
		Close: func() error {
			e.closed++
			return nil
		},
	}, nil
}

// run executes one command line on a fresh command tree, so flag values
// never leak between runs.
func (e *testEnv) run(ctx context.Context, args ...string) (string, string, error) {
	app := NewApp(models.NewAppBuildInfo("1.0.0", "2026-01-02", "abc123"), e.open, args)
	app.copyToClipboard = func(text string) error {
		e.copied = text
		return nil
	}

	var stdout, stderr bytes.Buffer
	root := app.Command()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(e.stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := e.run(context.Background(), args...)
	require.NoError(t, err, "onetabcloud %s", strings.Join(args, " "))
	return out
}

func (e *testEnv) skipSync() {
	e.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Skipped(models.SkipReasonNoCredential)).AnyTimes()
}

// onlyGroup returns the single stored group.
func (e *testEnv) onlyGroup(t *testing.T) models.TabGroup {
	t.Helper()
	groups, err := e.local.Groups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	return groups[0]
}

func (e *testEnv) view(t *testing.T, id string) models.GroupView {
	t.Helper()
	svc := service.NewGroupService(e.local, codec.NewCompressCodec(), logger.Nop())
	v, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	return v
}

// ── Runtime lifecycle ────────────────────────────────────────────────────────

func TestApp_RuntimeClosedAfterEachCommand(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	env.mustRun(t, "save", "g", "https://a.example")
	env.mustRun(t, "list")
	_, _, err := env.run(context.Background(), "show", "missing")
	require.Error(t, err)

	assert.Equal(t, 3, env.opened)
	assert.Equal(t, env.opened, env.closed)
}

func TestApp_OpenErrorIsReturned(t *testing.T) {
	env := newTestEnv(t)
	env.openErr = config.ErrInvalidRemoteConfigs

	_, _, err := env.run(context.Background(), "list")

	assert.ErrorIs(t, err, config.ErrInvalidRemoteConfigs)
}

func TestApp_VersionNeedsNoRuntime(t *testing.T) {
	env := newTestEnv(t)
	env.openErr = errors.New("must not open")

	out := env.mustRun(t, "version")

	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "2026-01-02")
	assert.Contains(t, out, "abc123")
	assert.Zero(t, env.opened)
}

func TestApp_UnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(context.Background(), "frobnicate")
	assert.Error(t, err)
}

func TestApp_ConfigFlagsAreRegistered(t *testing.T) {
	app := NewApp(models.NewAppBuildInfo("1", "", ""), newTestEnv(t).open, nil)

	for _, name := range []string{"remote-url", "credential", "storage-driver", "dsn", "codec", "sync-interval", "config"} {
		assert.NotNil(t, app.Command().PersistentFlags().Lookup(name), name)
	}
}

// ── Groups ───────────────────────────────────────────────────────────────────

func TestSave_URLs(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	out := env.mustRun(t, "save", "Reading", "https://go.dev", "https://example.com")
	assert.Contains(t, out, `saved 2 tabs as "Reading"`)

	g := env.onlyGroup(t)
	assert.Equal(t, "Reading", g.Name)

	v := env.view(t, g.ID)
	require.Len(t, v.Entries, 2)
	assert.Equal(t, "https://go.dev", v.Entries[0].URL)
	assert.NotEmpty(t, v.Entries[0].Timestamp)
}

func TestSave_FromFileAndStdin(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	path := filepath.Join(t.TempDir(), "tabs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"url":"https://a.example","title":"A","timestamp":"2024-01-01T00:00:00Z"}]`), 0o600))

	env.mustRun(t, "save", "from file", "https://first.example", "--file", path)
	v := env.view(t, env.onlyGroup(t).ID)
	require.Len(t, v.Entries, 2)
	assert.Equal(t, "A", v.Entries[1].Title)

	env.stdin = `[{"url":"https://b.example","title":"B"}]`
	env.mustRun(t, "save", "from stdin", "-f", "-")

	groups, err := env.local.Groups(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestSave_Rejected(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	_, _, err := env.run(context.Background(), "save")
	assert.Error(t, err, "NAME is required")

	env.stdin = `[{"title":"no url"}]`
	_, _, err = env.run(context.Background(), "save", "bad", "-f", "-")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	env.stdin = `not json`
	_, _, err = env.run(context.Background(), "save", "bad", "-f", "-")
	assert.Error(t, err)

	groups, err := env.local.Groups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestSave_SyncOutcomeIsReported(t *testing.T) {
	env := newTestEnv(t)

	gomock.InOrder(
		env.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Succeeded(1, "2026-01-01T00:00:00Z")),
		env.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Failed(errors.New("remote down"))),
	)

	out := env.mustRun(t, "save", "one", "https://a.example")
	assert.Contains(t, out, "synced 1 groups at 2026-01-01T00:00:00Z")

	out, stderr, err := env.run(context.Background(), "save", "two", "https://b.example")
	require.NoError(t, err, "the group is saved even when the sync fails")
	assert.Contains(t, out, `saved 1 tabs as "two"`)
	assert.Contains(t, stderr, "remote down")
}

func TestSave_SkippedSyncIsSilent(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	out := env.mustRun(t, "save", "quiet", "https://a.example")
	assert.NotContains(t, out, "sync")
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	out := env.mustRun(t, "list")
	assert.Contains(t, out, "no saved groups")

	env.mustRun(t, "save", "Work", "https://1.example", "https://2.example", "https://3.example")

	out = env.mustRun(t, "list", "--preview", "2")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "3 tabs")
	assert.Contains(t, out, "https://1.example")
	assert.Contains(t, out, "https://2.example")
	assert.NotContains(t, out, "https://3.example")
	assert.Contains(t, out, "1 more")
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	env.mustRun(t, "save", "Docs", "https://go.dev/doc")
	id := env.onlyGroup(t).ID

	out := env.mustRun(t, "show", id)
	assert.Contains(t, out, "Docs")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "https://go.dev/doc")

	_, _, err := env.run(context.Background(), "show", "nope")
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}

func TestRenameAndDelete(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	env.mustRun(t, "save", "old", "https://a.example")
	id := env.onlyGroup(t).ID

	env.mustRun(t, "rename", id, "new", "name")
	assert.Equal(t, "new name", env.onlyGroup(t).Name)

	env.mustRun(t, "delete", id)
	assert.True(t, env.onlyGroup(t).Deleted, "delete leaves a tombstone")

	out := env.mustRun(t, "list")
	assert.Contains(t, out, "no saved groups")
}

func TestTabCommands(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	env.mustRun(t, "save", "src", "https://a.example", "https://b.example", "https://c.example")
	env.mustRun(t, "save", "dst")

	groups, err := env.local.Groups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	src, dst := groups[0].ID, groups[1].ID
	if groups[0].Name == "dst" {
		src, dst = dst, src
	}

	env.mustRun(t, "edit-tab", src, "0", "First", "tab")
	assert.Equal(t, "First tab", env.view(t, src).Entries[0].Title)

	env.mustRun(t, "remove-tab", src, "1")
	assert.Len(t, env.view(t, src).Entries, 2)

	env.mustRun(t, "move-tab", src, "1", dst)
	assert.Len(t, env.view(t, src).Entries, 1)
	moved := env.view(t, dst).Entries
	require.Len(t, moved, 1)
	assert.Equal(t, "https://c.example", moved[0].URL)

	_, _, err = env.run(context.Background(), "remove-tab", src, "x")
	assert.ErrorIs(t, err, ErrInvalidIndex)
	// "--" keeps cobra from reading -1 as a shorthand flag
	_, _, err = env.run(context.Background(), "remove-tab", "--", src, "-1")
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, _, err = env.run(context.Background(), "remove-tab", src, "9")
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "12", want: 12},
		{in: "-1", wantErr: true},
		{in: "x", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseIndex(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSyncCommand(t *testing.T) {
	env := newTestEnv(t)

	gomock.InOrder(
		env.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Succeeded(4, "2026-02-03T04:05:06Z")),
		env.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Skipped(models.SkipReasonNoCredential)),
		env.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Failed(context.DeadlineExceeded)),
	)

	out := env.mustRun(t, "sync")
	assert.Contains(t, out, "synced 4 groups")

	out = env.mustRun(t, "sync")
	assert.Contains(t, out, "skipped: no-credential")

	_, _, err := env.run(context.Background(), "sync")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDaemon_SyncsUntilCancelled(t *testing.T) {
	env := newTestEnv(t)
	env.sync.EXPECT().Synchronize(gomock.Any()).Return(models.Succeeded(0, "2026-01-01T00:00:00Z")).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, _, err := env.run(ctx, "daemon")

	require.NoError(t, err)
	assert.Contains(t, out, "syncing every 10ms")
	assert.Contains(t, out, "stopped")
	assert.Equal(t, 1, env.closed)
}

// ── Export / import / stats ──────────────────────────────────────────────────

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	env.mustRun(t, "save", "g", "https://a.example")
	id := env.onlyGroup(t).ID

	out := env.mustRun(t, "export")
	assert.Contains(t, out, id)

	path := filepath.Join(t.TempDir(), "export.json")
	out = env.mustRun(t, "export", "--out", path)
	assert.Empty(t, out)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), id)

	out = env.mustRun(t, "export", "--clipboard")
	assert.Empty(t, out)
	assert.Contains(t, env.copied, id)
}

func TestExportImportBetweenInstallations(t *testing.T) {
	src := newTestEnv(t)
	src.skipSync()
	src.mustRun(t, "save", "one", "https://a.example")
	src.mustRun(t, "save", "two", "https://b.example")

	path := filepath.Join(t.TempDir(), "export.json")
	src.mustRun(t, "export", "-o", path)

	dst := newTestEnv(t)
	dst.skipSync()
	out := dst.mustRun(t, "import", path)
	assert.Contains(t, out, "imported 2 groups")

	groups, err := dst.local.Groups(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, _, err = dst.run(context.Background(), "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	dst.stdin = "garbage"
	_, _, err = dst.run(context.Background(), "import", "-")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()

	env.mustRun(t, "save", "a", "https://a.example", "https://b.example")
	env.mustRun(t, "save", "b", "https://c.example")
	env.mustRun(t, "delete", env.mustFindByName(t, "b"))

	out := env.mustRun(t, "stats")
	assert.Contains(t, out, "groups:     1")
	assert.Contains(t, out, "tombstones: 1")
	assert.Contains(t, out, "tabs:       2")
	assert.Contains(t, out, "last sync:  N/A")
}

func (e *testEnv) mustFindByName(t *testing.T, name string) string {
	t.Helper()
	groups, err := e.local.Groups(context.Background())
	require.NoError(t, err)
	for _, g := range groups {
		if g.Name == name {
			return g.ID
		}
	}
	t.Fatalf("group %q not found", name)
	return ""
}

// ── State ────────────────────────────────────────────────────────────────────

func TestCredential(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out := env.mustRun(t, "credential")
	assert.Contains(t, out, "not configured")

	env.mustRun(t, "credential", "set", " token-1 ")
	got, err := env.local.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)

	out = env.mustRun(t, "credential")
	assert.Contains(t, out, "stored credential: configured")

	env.stdin = "token-2\n"
	env.mustRun(t, "credential", "set")
	got, err = env.local.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got)

	env.stdin = ""
	_, _, err = env.run(ctx, "credential", "set")
	assert.ErrorIs(t, err, ErrEmptyCredential)

	env.mustRun(t, "credential", "clear")
	got, err = env.local.Credential(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCredential_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	states := mock.NewMockStateStore(gomock.NewController(t))
	env.state = states

	states.EXPECT().SetCredential(gomock.Any(), "t").Return(store.ErrStoreClosed)

	_, _, err := env.run(context.Background(), "credential", "set", "t")
	assert.ErrorIs(t, err, store.ErrStoreClosed)
}

func TestKeyShow(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "key", "show")
	assert.Contains(t, out, "no crypto key yet")

	key, err := codec.GenerateKey()
	require.NoError(t, err)
	require.NoError(t, env.local.SetCryptoKey(context.Background(), key))

	out = env.mustRun(t, "key", "show")
	assert.Equal(t, key+"\n", out)
}

func TestReset(t *testing.T) {
	env := newTestEnv(t)
	env.skipSync()
	ctx := context.Background()

	env.mustRun(t, "save", "g", "https://a.example")
	require.NoError(t, env.local.SetCredential(ctx, "token"))

	_, _, err := env.run(ctx, "reset")
	assert.ErrorIs(t, err, ErrResetNotConfirmed)
	env.onlyGroup(t)

	env.mustRun(t, "reset", "--yes")

	groups, err := env.local.Groups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
	state, err := env.local.State(ctx)
	require.NoError(t, err)
	assert.False(t, state.HasCredential())
}
