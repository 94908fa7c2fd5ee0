package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"overdub/internal/album"
	"overdub/internal/snapshot"
)

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	albumCmd := &cobra.Command{
		Use:   "album",
		Short: "Edit album-level settings",
	}

	albumCmd.AddCommand(newAlbumTitleCommand(ctx))
	albumCmd.AddCommand(newAlbumDeadlineCommand(ctx))

	return albumCmd
}

func newAlbumTitleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "title <title>...",
		Short: "Rename the album",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				// A blank submission keeps the current title, as with song renames.
				if title == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No change")
					return snap, nil
				}
				snap.AlbumTitle = title
				fmt.Fprintf(cmd.OutOrStdout(), "Album is now %q\n", title)
				return snap, nil
			})
		},
	}
}

func newAlbumDeadlineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deadline <when>",
		Short: "Set the release deadline",
		Long: "Set the release deadline. Accepts RFC 3339 timestamps and the " +
			"shorthand forms 2006-01-02, 2006-01-02T15:04, and 2006-01-02T15:04:05 " +
			"(read as local time).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := album.ParseDeadline(args[0])
			if err != nil {
				return fmt.Errorf("parse deadline %q: %w", args[0], err)
			}
			stored := target.Format(time.RFC3339)
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				snap.TargetISO = stored
				fmt.Fprintf(cmd.OutOrStdout(), "Deadline set to %s\n", stored)
				fmt.Fprintln(cmd.OutOrStdout(), deadlineLine(stored, time.Now()))
				return snap, nil
			})
		},
	}
}
