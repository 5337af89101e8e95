package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jaychenthinkfast/OneTabCloud/internal/workers"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

func (a *App) newSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Merge local groups with the remote copy now",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		outcome := rt.Sync.Synchronize(ctx)
		if outcome.Status == models.SyncFailed {
			return fmt.Errorf("sync failed: %w", outcome.Err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderOutcome(outcome))
		return nil
	})

	return cmd
}

func (a *App) newDaemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Sync once, then periodically until interrupted",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		interval := rt.Workers.SyncInterval
		if interval <= 0 {
			interval = workers.DefaultSyncInterval
		}

		outcome := rt.Sync.Synchronize(ctx)
		fmt.Fprintln(cmd.OutOrStdout(), renderOutcome(outcome))
		fmt.Fprintf(cmd.OutOrStdout(), "syncing every %s, press ctrl+c to stop\n", interval)

		ws := workers.NewWorkers(workers.NewSyncWorker(rt.Sync, interval, rt.Logger))
		ws.Start(ctx)
		<-ctx.Done()
		ws.Stop()

		fmt.Fprintln(cmd.OutOrStdout(), "stopped")
		return nil
	})

	return cmd
}
