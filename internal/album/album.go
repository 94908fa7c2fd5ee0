package album

import (
	"fmt"
	"math"
)

// Defaults used when no persisted state exists yet.
const (
	DefaultTitle     = "Album Dashboard"
	DefaultTargetISO = "2026-08-01T00:00:00Z"
	defaultSongCount = 12
)

// DefaultStageNames is the production-stage template applied to new songs.
var DefaultStageNames = []string{
	"Demo",
	"Lyrics",
	"Drums",
	"Bass",
	"Rhythm Guitars",
	"Lead Guitar / Solo",
	"Vocals",
	"Mix",
}

// Album is the aggregate the whole tracker operates on: the ordered song
// collection plus the two top-level scalars.
type Album struct {
	Songs     []Song
	Title     string
	TargetISO string
}

// Default builds the first-run album: twelve placeholder songs with the
// standard stage template, default tempo, no key, and zero duration.
func Default() Album {
	return Album{
		Songs:     DefaultSongs(),
		Title:     DefaultTitle,
		TargetISO: DefaultTargetISO,
	}
}

// DefaultSongs returns the placeholder song list used on first run.
func DefaultSongs() []Song {
	songs := make([]Song, defaultSongCount)
	for i := range songs {
		songs[i] = Song{
			ID:     i + 1,
			Title:  fmt.Sprintf("Song %d", i+1),
			Stages: DefaultStages(),
			Tempo:  DefaultTempo,
		}
	}
	return songs
}

// DefaultStages returns a fresh zero-progress copy of the stage template.
func DefaultStages() []Stage {
	stages := make([]Stage, len(DefaultStageNames))
	for i, name := range DefaultStageNames {
		stages[i] = Stage{Name: name}
	}
	return stages
}

// AlbumCompletion derives overall album progress as the rounded average of
// per-song completion over every song, drafts included.
func AlbumCompletion(songs []Song) int {
	if len(songs) == 0 {
		return 0
	}
	sum := 0
	for _, s := range songs {
		sum += SongCompletion(s)
	}
	return int(math.Round(float64(sum) / float64(len(songs))))
}

// EligibleCount counts songs whose completion meets the threshold. Drafts
// count here; only the run-time total excludes them.
func EligibleCount(songs []Song, threshold int) int {
	count := 0
	for _, s := range songs {
		if SongCompletion(s) >= threshold {
			count++
		}
	}
	return count
}

// TotalDurationMinutes sums the durations of non-draft songs and returns
// whole minutes. Seconds accumulate across songs before the single final
// floor division, so per-song fractions never compound.
func TotalDurationMinutes(songs []Song) int {
	totalSeconds := 0
	for _, s := range songs {
		if s.IsDraft {
			continue
		}
		totalSeconds += max(0, s.Duration.Minutes)*60 + max(0, s.Duration.Seconds)
	}
	return totalSeconds / 60
}

// UpdateSong replaces the song whose ID matches updated. Every field edit
// funnels through here: the caller reconstructs the full song and the
// collection swaps it in by identity. An unknown ID is a silent no-op.
func UpdateSong(songs []Song, updated Song) []Song {
	out := make([]Song, len(songs))
	copy(out, songs)
	for i, s := range out {
		if s.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

// FindSong looks a song up by ID.
func FindSong(songs []Song, id int) (Song, bool) {
	for _, s := range songs {
		if s.ID == id {
			return s, true
		}
	}
	return Song{}, false
}

// MoveSong reorders the collection with the same splice semantics as
// MoveStage. IDs travel with their songs; equal or out-of-range indices are
// silent no-ops, matching the cancelled-drag contract.
func MoveSong(songs []Song, from, to int) []Song {
	if from == to || from < 0 || from >= len(songs) || to < 0 || to >= len(songs) {
		return songs
	}
	out := make([]Song, len(songs))
	copy(out, songs)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, Song{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
