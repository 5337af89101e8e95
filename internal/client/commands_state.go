package client

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newCredentialCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage the container API credential",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		state, err := rt.State.State(ctx)
		if err != nil {
			return fmt.Errorf("read sync state: %w", err)
		}

		status := "not configured, sync is disabled"
		if state.HasCredential() {
			status = "configured"
		}
		fmt.Fprintln(cmd.OutOrStdout(), "stored credential: "+status)
		return nil
	})

	set := &cobra.Command{
		Use:   "set [TOKEN]",
		Short: "Store the bearer credential, read from stdin when TOKEN is omitted",
		Args:  cobra.MaximumNArgs(1),
	}
	set.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, args []string) error {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return ErrEmptyCredential
			}
			token = line
		}

		token = strings.TrimSpace(token)
		if token == "" {
			return ErrEmptyCredential
		}

		if err := rt.State.SetCredential(ctx, token); err != nil {
			return fmt.Errorf("store credential: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "credential stored")
		return nil
	})

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored credential, which disables sync",
		Args:  cobra.NoArgs,
	}
	clearCmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		if err := rt.State.SetCredential(ctx, ""); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "credential cleared")
		return nil
	})

	cmd.AddCommand(set, clearCmd)
	return cmd
}

func (a *App) newKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Inspect the tab encryption key",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the crypto key; back it up, it cannot be recovered",
		Args:  cobra.NoArgs,
	}
	show.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		key, err := rt.State.CryptoKey(ctx)
		if err != nil {
			return fmt.Errorf("read crypto key: %w", err)
		}
		if key == "" {
			fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("no crypto key yet, one is created by the first encrypted save"))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	})

	cmd.AddCommand(show)
	return cmd
}

func (a *App) newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every local group, the credential and the crypto key",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")

	cmd.RunE = a.withRuntime(func(ctx context.Context, rt *Runtime, cmd *cobra.Command, _ []string) error {
		if !yes {
			return ErrResetNotConfirmed
		}

		if err := rt.State.Reset(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "local store erased")
		return nil
	})

	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), renderBuildInfo(a.info))
		},
	}
}
