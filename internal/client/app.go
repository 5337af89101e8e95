package client

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/service"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

const clientRole = "onetabcloud"

// Runtime is what a command works with once the configuration is loaded.
type Runtime struct {
	Groups  service.GroupService
	Sync    service.SyncService
	State   StateStore
	Workers config.Workers
	Logger  *logger.Logger

	// Close releases the local store. It may be nil.
	Close func() error
}

// Opener builds a [Runtime] from the flag layer of the configuration.
type Opener func(ctx context.Context, flags *config.StructuredConfig) (*Runtime, error)

type App struct {
	info models.AppBuildInfo
	open Opener
	args []string

	// copyToClipboard is replaced in tests.
	copyToClipboard func(text string) error

	root  *cobra.Command
	flags *config.Flags
}

var _ Client = (*App)(nil)

// NewApp builds the command tree. args are the command-line arguments
// without the program name.
func NewApp(info models.AppBuildInfo, open Opener, args []string) *App {
	a := &App{
		info:            info,
		open:            open,
		args:            args,
		copyToClipboard: clipboard.WriteAll,
	}
	a.root = a.newRootCommand()
	return a
}

func (a *App) Run() error {
	a.root.SetArgs(a.args)
	return a.root.ExecuteContext(context.Background())
}

// Command returns the root command.
func (a *App) Command() *cobra.Command {
	return a.root
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "onetabcloud",
		Short:         "Save browser tab groups and keep them in sync across machines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.flags = config.RegisterClientFlags(root.PersistentFlags())

	root.AddCommand(
		a.newSaveCommand(),
		a.newListCommand(),
		a.newShowCommand(),
		a.newRenameCommand(),
		a.newDeleteCommand(),
		a.newEditTabCommand(),
		a.newRemoveTabCommand(),
		a.newMoveTabCommand(),
		a.newSyncCommand(),
		a.newDaemonCommand(),
		a.newExportCommand(),
		a.newImportCommand(),
		a.newStatsCommand(),
		a.newCredentialCommand(),
		a.newKeyCommand(),
		a.newResetCommand(),
		a.newVersionCommand(),
	)

	return root
}

// runFunc is the body of a command that needs the local store.
type runFunc func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error

// withRuntime opens a Runtime for the duration of one command.
func (a *App) withRuntime(fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		rt, err := a.open(ctx, a.flags.Config())
		if err != nil {
			return fmt.Errorf("open local store: %w", err)
		}
		defer func() {
			if rt.Close == nil {
				return
			}
			if closeErr := rt.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close local store: %w", closeErr)
			}
		}()

		return fn(ctx, rt, cmd, args)
	}
}

// OpenRuntime is the production [Opener]: configuration from env, flags and
// JSON file, a rotating log file, and the configured local store.
func OpenRuntime(ctx context.Context, flags *config.StructuredConfig) (*Runtime, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.Log.File)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewClientServices(storages, *cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &Runtime{
		Groups:  services.GroupService,
		Sync:    services.SyncService,
		State:   storages.Local,
		Workers: cfg.Workers,
		Logger:  log,
		Close:   storages.Close,
	}, nil
}
