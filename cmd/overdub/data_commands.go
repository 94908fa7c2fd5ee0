package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"overdub/internal/config"
	"overdub/internal/snapshot"
	"overdub/internal/store"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current state to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = snapshot.ExportFileName
			}
			return ctx.viewSnapshot(cmd, func(_ *config.Config, snap snapshot.Snapshot) error {
				data, err := snapshot.Marshal(snap)
				if err != nil {
					return err
				}
				if err := os.WriteFile(target, data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d songs to %s\n", len(snap.Songs), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (default "+snapshot.ExportFileName+")")
	return cmd
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the current state with a previously exported file",
		Long: "Replace the current state with a previously exported file. Older " +
			"export shapes are migrated on the way in; a file that cannot be parsed " +
			"at all leaves the current state untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			return ctx.withStore(cmd, func(cmdCtx context.Context, st *store.Store, _ snapshot.Snapshot) error {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				snap, err := snapshot.Decode(data, logger)
				if err != nil {
					if errors.Is(err, snapshot.ErrMalformed) {
						return fmt.Errorf("invalid file: %s is not a readable dashboard export; nothing was changed", args[0])
					}
					return err
				}
				payload, err := snapshot.Marshal(snap)
				if err != nil {
					return err
				}
				if err := st.Replace(cmdCtx, payload); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d songs from %s\n", len(snap.Songs), args[0])
				return nil
			})
		},
	}
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all saved progress and return to the default album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset discards all saved progress; pass --force to confirm")
			}
			return ctx.withStore(cmd, func(cmdCtx context.Context, st *store.Store, _ snapshot.Snapshot) error {
				if err := st.Clear(cmdCtx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved progress cleared; the next command starts from the default album")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm discarding all saved progress")
	return cmd
}
