package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) newExportCommand() *cobra.Command {
	var (
		out         string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every stored group, tombstones included, as JSON",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy to the system clipboard")

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		data, err := rt.Groups.Export(ctx)
		if err != nil {
			return fmt.Errorf("export groups: %w", err)
		}

		if toClipboard {
			if err = a.copyToClipboard(string(data)); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "copied %d bytes to the clipboard\n", len(data))
		}

		switch {
		case out != "":
			if err = os.WriteFile(out, append(data, '\n'), 0o600); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", out)
		case !toClipboard:
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}
		return nil
	})

	return cmd
}

func (a *App) newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge groups from an export file, \"-\" reads stdin",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		n, err := rt.Groups.Import(ctx, data)
		if err != nil {
			return fmt.Errorf("import groups: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d groups\n", n)
		a.syncAfterChange(ctx, rt, cmd)
		return nil
	})

	return cmd
}

func (a *App) newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show group, tab and size counters",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		stats, err := rt.Groups.Stats(ctx)
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), renderStats(stats))
		return nil
	})

	return cmd
}
