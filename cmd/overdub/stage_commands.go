package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"overdub/internal/album"
	"overdub/internal/snapshot"
)

func newStageCommand(ctx *commandContext) *cobra.Command {
	stageCmd := &cobra.Command{
		Use:   "stage",
		Short: "Edit the production stages of a song",
	}

	stageCmd.AddCommand(newStageAddCommand(ctx))
	stageCmd.AddCommand(newStageRemoveCommand(ctx))
	stageCmd.AddCommand(newStageSetCommand(ctx))
	stageCmd.AddCommand(newStageMoveCommand(ctx))

	return stageCmd
}

func newStageAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <song-id>",
		Short: "Append a new zero-progress stage to a song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				song.Stages = album.AddStage(song.Stages)
				snap.Songs = album.UpdateSong(snap.Songs, song)
				added := song.Stages[len(song.Stages)-1]
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to song %d (%d stages)\n",
					added.Name, id, len(song.Stages))
				return snap, nil
			})
		},
	}
}

func newStageRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <song-id> <position>",
		Short: "Remove a stage from a song",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			index, err := parsePosition(args[1], "stage")
			if err != nil {
				return err
			}
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				if err := checkStageIndex(song, index); err != nil {
					return snap, err
				}
				removed := song.Stages[index]
				song.Stages = album.RemoveStage(song.Stages, index)
				snap.Songs = album.UpdateSong(snap.Songs, song)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from song %d (now %d%% complete)\n",
					removed.Name, id, album.SongCompletion(song))
				return snap, nil
			})
		},
	}
}

func newStageSetCommand(ctx *commandContext) *cobra.Command {
	var name string
	var value int

	cmd := &cobra.Command{
		Use:   "set <song-id> <position>",
		Short: "Update a stage's name or progress",
		Long: "Update a stage's name, progress value, or both. A blank --name " +
			"keeps the current name and --value is clamped to 0-100.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			index, err := parsePosition(args[1], "stage")
			if err != nil {
				return err
			}

			patch := album.StagePatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("value") {
				patch.Value = &value
			}
			if patch.Name == nil && patch.Value == nil {
				return fmt.Errorf("nothing to change: pass --name, --value, or both")
			}

			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				if err := checkStageIndex(song, index); err != nil {
					return snap, err
				}
				song.Stages = album.SetStage(song.Stages, index, patch)
				snap.Songs = album.UpdateSong(snap.Songs, song)
				updated := song.Stages[index]
				fmt.Fprintf(cmd.OutOrStdout(), "Song %d stage %d: %q at %d%% (song %d%% complete)\n",
					id, index+1, updated.Name, updated.Value, album.SongCompletion(song))
				return snap, nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New stage name")
	cmd.Flags().IntVar(&value, "value", 0, "New progress value (0-100)")
	return cmd
}

func newStageMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <song-id> <from-position> <to-position>",
		Short: "Reorder the stages of a song",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			from, err := parsePosition(args[1], "stage")
			if err != nil {
				return err
			}
			to, err := parsePosition(args[2], "stage")
			if err != nil {
				return err
			}
			return ctx.updateSnapshot(cmd, func(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
				song, err := requireSong(snap, id)
				if err != nil {
					return snap, err
				}
				if err := checkStageIndex(song, from); err != nil {
					return snap, err
				}
				if err := checkStageIndex(song, to); err != nil {
					return snap, err
				}
				if from == to {
					fmt.Fprintln(cmd.OutOrStdout(), "No change")
					return snap, nil
				}
				song.Stages = album.MoveStage(song.Stages, from, to)
				snap.Songs = album.UpdateSong(snap.Songs, song)
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to position %d in song %d\n",
					song.Stages[to].Name, to+1, id)
				return snap, nil
			})
		},
	}
}

func checkStageIndex(song album.Song, index int) error {
	if index < 0 || index >= len(song.Stages) {
		return fmt.Errorf("stage position out of range (song %d has %d stages)", song.ID, len(song.Stages))
	}
	return nil
}
