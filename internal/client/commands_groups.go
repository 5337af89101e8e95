package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// defaultPreview is the number of tabs list shows per group.
const defaultPreview = 5

func (a *App) newSaveCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save NAME [URL...]",
		Short: "Save a new tab group",
		Long: `Save a new tab group named NAME holding the given URLs.

Tabs can also be read from a JSON file holding an array of
{"url","title","timestamp"} objects; "-" reads the array from stdin.`,
		Args: cobra.MinimumNArgs(1),
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with an array of tabs")

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		tabs := tabsFromURLs(args[1:], time.Now())

		if file != "" {
			fromFile, err := readTabsFile(cmd, file)
			if err != nil {
				return err
			}
			tabs = append(tabs, fromFile...)
		}

		group, err := rt.Groups.Create(ctx, args[0], tabs)
		if err != nil {
			return fmt.Errorf("save group: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "saved %d tabs as %q (id %s)\n", len(tabs), group.Name, group.ID)
		a.syncAfterChange(ctx, rt, cmd)
		return nil
	})

	return cmd
}

func (a *App) newListCommand() *cobra.Command {
	var preview int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved groups, most recently modified first",
		Args:    cobra.NoArgs,
	}
	cmd.Flags().IntVarP(&preview, "preview", "n", defaultPreview, "Tabs shown per group")

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		views, err := rt.Groups.List(ctx)
		if err != nil {
			return fmt.Errorf("list groups: %w", err)
		}
		if preview < 0 {
			preview = 0
		}

		fmt.Fprint(cmd.OutOrStdout(), renderGroupList(views, preview))
		return nil
	})

	return cmd
}

func (a *App) newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show every tab of a group",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		view, err := rt.Groups.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("show group: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), renderGroup(view))
		return nil
	})

	return cmd
}

func (a *App) newRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename ID NAME...",
		Short: "Rename a group",
		Args:  cobra.MinimumNArgs(2),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		name := strings.Join(args[1:], " ")
		if err := rt.Groups.Rename(ctx, args[0], name); err != nil {
			return fmt.Errorf("rename group: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "renamed %s to %q\n", args[0], name)
		a.syncAfterChange(ctx, rt, cmd)
		return nil
	})

	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a group on every synced machine",
		Args:    cobra.ExactArgs(1),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		if err := rt.Groups.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		a.syncAfterChange(ctx, rt, cmd)
		return nil
	})

	return cmd
}

func (a *App) newEditTabCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit-tab ID INDEX TITLE...",
		Short: "Change the title of a tab",
		Args:  cobra.MinimumNArgs(3),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}

		title := strings.Join(args[2:], " ")
		if err = rt.Groups.EditTabTitle(ctx, args[0], index, title); err != nil {
			return fmt.Errorf("edit tab: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "tab %d of %s is now %q\n", index, args[0], title)
		return nil
	})

	return cmd
}

func (a *App) newRemoveTabCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-tab ID INDEX",
		Short: "Remove one tab from a group",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}

		if err = rt.Groups.RemoveTab(ctx, args[0], index); err != nil {
			return fmt.Errorf("remove tab: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed tab %d from %s\n", index, args[0])
		return nil
	})

	return cmd
}

func (a *App) newMoveTabCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move-tab FROM INDEX TO",
		Short: "Move a tab to the end of another group",
		Args:  cobra.ExactArgs(3),
	}

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}

		if err = rt.Groups.MoveTab(ctx, args[0], index, args[2]); err != nil {
			return fmt.Errorf("move tab: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "moved tab %d of %s to %s\n", index, args[0], args[2])
		return nil
	})

	return cmd
}

// syncAfterChange pushes a local change right away. The change itself is
// already saved, so a failed sync is reported and does not fail the
// command. Without a credential the sync is skipped silently.
func (a *App) syncAfterChange(ctx context.Context, rt *Runtime, cmd *cobra.Command) {
	outcome := rt.Sync.Synchronize(ctx)
	switch outcome.Status {
	case models.SyncSkipped:
	case models.SyncFailed:
		fmt.Fprintln(cmd.ErrOrStderr(), renderOutcome(outcome))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), renderOutcome(outcome))
	}
}

func tabsFromURLs(urls []string, now time.Time) []models.TabEntry {
	timestamp := models.FormatTime(now)

	tabs := make([]models.TabEntry, 0, len(urls))
	for _, u := range urls {
		tabs = append(tabs, models.TabEntry{URL: u, Timestamp: timestamp})
	}
	return tabs
}

func readTabsFile(cmd *cobra.Command, path string) ([]models.TabEntry, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	var tabs []models.TabEntry
	if err = json.Unmarshal(data, &tabs); err != nil {
		return nil, fmt.Errorf("parse tabs file %s: %w", path, err)
	}
	return tabs, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return index, nil
}
