package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"overdub/internal/album"
	"overdub/internal/snapshot"
)

func newSongCommand(ctx *commandContext) *cobra.Command {
	songCmd := &cobra.Command{
		Use:   "song",
		Short: "Edit song metadata and ordering",
	}

	songCmd.AddCommand(newSongTitleCommand(ctx))
	songCmd.AddCommand(newSongTempoCommand(ctx))
	songCmd.AddCommand(newSongKeyCommand(ctx))
	songCmd.AddCommand(newSongDurationCommand(ctx))
	songCmd.AddCommand(newSongDraftCommand(ctx))
	songCmd.AddCommand(newSongMoveCommand(ctx))

	return songCmd
}

func newSongTitleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "title <song-id> <title>...",
		Short: "Rename a song",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				song = album.Rename(song, title)
				snap.Songs = album.UpdateSong(snap.Songs, song)
				fmt.Fprintf(cmd.OutOrStdout(), "Song %d is now %q\n", id, song.Title)
				return snap, nil
			})
		},
	}
}

func newSongTempoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tempo <song-id> <bpm>",
		Short: "Set a song's tempo in BPM",
		Long: "Set a song's tempo in BPM. Values outside 30-300 are clamped and " +
			"unparsable input falls back to 120.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			tempo := album.ValidateTempo(args[1])
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				song.Tempo = tempo
				snap.Songs = album.UpdateSong(snap.Songs, song)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Song %d tempo set to %d BPM\n", id, tempo)
				if strings.TrimSpace(args[1]) != fmt.Sprintf("%d", tempo) {
					fmt.Fprintf(out, "Input %q was adjusted to stay within %d-%d BPM\n",
						args[1], album.MinTempo, album.MaxTempo)
				}
				return snap, nil
			})
		},
	}
}

func newSongKeyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "key <song-id> [note] [mode]",
		Short: "Set or clear a song's key",
		Long: "Set a song's key from a note (C, Db, F#, ...) and an optional mode " +
			"(major or minor, default major). The note is respelled to the canonical " +
			"form for the mode. Omitting the note clears the key.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			var note, mode string
			if len(args) > 1 {
				note = strings.TrimSpace(args[1])
			}
			if len(args) > 2 {
				mode = args[2]
			}
			if note != "" && !album.ValidNote(note) {
				return fmt.Errorf("unknown note %q (valid notes: %s, plus the sharp spellings C#, D#, G#, A#)",
					note, strings.Join(album.Notes(), ", "))
			}
			key := album.FormatKey(note, mode)
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				song.Key = key
				snap.Songs = album.UpdateSong(snap.Songs, song)
				if key == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Song %d key cleared\n", id)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Song %d key set to %s\n", id, key)
				}
				return snap, nil
			})
		},
	}
}

func newSongDurationCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <song-id> <minutes> <seconds>",
		Short: "Set a song's length",
		Long: "Set a song's length. Minutes and seconds are validated " +
			"independently: each clamps to 0-59 and non-numeric input becomes 0. " +
			"Seconds never carry into minutes.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			duration := album.ValidateDuration(args[1], args[2])
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				song.Duration = duration
				snap.Songs = album.UpdateSong(snap.Songs, song)
				fmt.Fprintf(cmd.OutOrStdout(), "Song %d length set to %s\n",
					id, album.FormatDuration(duration.Minutes, duration.Seconds))
				return snap, nil
			})
		},
	}
}

func newSongDraftCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "draft <song-id> <on|off>",
		Short: "Mark a song as a draft or promote it",
		Long: "Mark a song as a draft or promote it. Drafts keep counting toward " +
			"album completion and eligibility but are excluded from the total run time.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			draft, err := parseOnOff(args[1])
			if err != nil {
				return err
			}
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				song.IsDraft = draft
				snap.Songs = album.UpdateSong(snap.Songs, song)
				if draft {
					fmt.Fprintf(cmd.OutOrStdout(), "Song %d marked as draft\n", id)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Song %d is no longer a draft\n", id)
				}
				return snap, nil
			})
		},
	}
}

func newSongMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from-position> <to-position>",
		Short: "Move a song to another position in the track list",
		Long: "Move a song to another position in the track list. Positions are " +
			"the 1-based row numbers printed by status. The songs in between shift " +
			"over; nothing is swapped.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0], "song")
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1], "song")
			if err != nil {
				return err
			}
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				if from >= len(snap.Songs) || to >= len(snap.Songs) {
					return snap, fmt.Errorf("song position out of range (album has %d songs)", len(snap.Songs))
				}
				if from == to {
					fmt.Fprintln(cmd.OutOrStdout(), "No change")
					return snap, nil
				}
				snap.Songs = album.MoveSong(snap.Songs, from, to)
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to position %d\n", snap.Songs[to].Title, to+1)
				return snap, nil
			})
		},
	}
}
