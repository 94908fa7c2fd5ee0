package main

import (
	"fmt"
	"strconv"
	"strings"

	"overdub/internal/album"
	"overdub/internal/snapshot"
)

func parseSongID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid song id %q", arg)
	}
	return id, nil
}

// parsePosition converts a 1-based position argument (as printed by status
// and show) to a 0-based index.
func parsePosition(arg, what string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || pos <= 0 {
		return 0, fmt.Errorf("invalid %s position %q", what, arg)
	}
	return pos - 1, nil
}

func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}

// requireSong finds a song by id or fails with a message naming the id.
func requireSong(snap snapshot.Snapshot, id int) (album.Song, error) {
	song, ok := album.FindSong(snap.Songs, id)
	if !ok {
		return album.Song{}, fmt.Errorf("song %d not found", id)
	}
	return song, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
