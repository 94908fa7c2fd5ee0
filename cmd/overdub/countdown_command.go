package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"overdub/internal/config"
	"overdub/internal/snapshot"
)

func newCountdownCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "countdown",
		Short: "Show the time remaining until the release deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.viewSnapshot(cmd, func(_ *config.Config, snap snapshot.Snapshot) error {
				fmt.Fprintln(cmd.OutOrStdout(), deadlineLine(snap.TargetISO, time.Now()))
				return nil
			})
		},
	}
}
