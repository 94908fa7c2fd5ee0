package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"overdub/internal/album"
	"overdub/internal/config"
	"overdub/internal/snapshot"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show album progress overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.viewSnapshot(cmd, func(cfg *config.Config, snap snapshot.Snapshot) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				fmt.Fprintln(out, snap.AlbumTitle)
				fmt.Fprintf(out, "Overall: %d%%  Eligible: %d/%d (>= %d%%)  Run time: %s\n",
					album.AlbumCompletion(snap.Songs),
					album.EligibleCount(snap.Songs, cfg.Album.EligibleThreshold),
					len(snap.Songs),
					cfg.Album.EligibleThreshold,
					album.FormatTotalDuration(album.TotalDurationMinutes(snap.Songs)),
				)
				fmt.Fprintln(out, deadlineLine(snap.TargetISO, time.Now()))
				fmt.Fprintln(out)

				headers := []string{"#", "ID", "Title", "Key", "Tempo", "Length", "Draft", "Progress"}
				aligns := []columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
				rows := make([][]string, 0, len(snap.Songs))
				for i, song := range snap.Songs {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						strconv.Itoa(song.ID),
						song.Title,
						song.Key,
						strconv.Itoa(song.Tempo),
						album.FormatDuration(song.Duration.Minutes, song.Duration.Seconds),
						yesNo(song.IsDraft),
						renderProgress(album.SongCompletion(song), colorize),
					})
				}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <song-id>",
		Short: "Show one song in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.viewSnapshot(cmd, func(cfg *config.Config, snap snapshot.Snapshot) error {
				song, err := requireSong(snap, id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				fmt.Fprintf(out, "%s (id %d)\n", song.Title, song.ID)
				key := song.Key
				if key == "" {
					key = "-"
				}
				fmt.Fprintf(out, "Key: %s  Tempo: %d BPM  Length: %s  Draft: %s\n",
					key, song.Tempo,
					album.FormatDuration(song.Duration.Minutes, song.Duration.Seconds),
					yesNo(song.IsDraft),
				)
				fmt.Fprintf(out, "Completion: %d%%\n\n", album.SongCompletion(song))

				headers := []string{"#", "Stage", "Progress"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft}
				rows := make([][]string, 0, len(song.Stages))
				for i, stage := range song.Stages {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						stage.Name,
						renderProgress(album.ClampPercent(stage.Value), colorize),
					})
				}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}

// deadlineLine renders the countdown summary shown by status and countdown.
func deadlineLine(targetISO string, now time.Time) string {
	target, err := album.ParseDeadline(targetISO)
	if err != nil {
		return fmt.Sprintf("Deadline: %s (unparsable)", targetISO)
	}
	c := album.Remaining(target, now)
	return fmt.Sprintf("Due in: %dd %02d:%02d:%02d (target %s)", c.Days, c.Hours, c.Minutes, c.Seconds, targetISO)
}
