package snapshot

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strings"

	"overdub/internal/album"
)

// rawSnapshot defers every field so one malformed value never sinks the
// whole document.
type rawSnapshot struct {
	Songs      []json.RawMessage `json:"songs"`
	AlbumTitle json.RawMessage   `json:"albumTitle"`
	TargetISO  json.RawMessage   `json:"targetISO"`
}

type rawSong struct {
	ID       json.RawMessage `json:"id"`
	Title    json.RawMessage `json:"title"`
	Stages   json.RawMessage `json:"stages"`
	Tempo    json.RawMessage `json:"tempo"`
	Key      json.RawMessage `json:"key"`
	Duration json.RawMessage `json:"duration"`
	IsDraft  json.RawMessage `json:"isDraft"`
}

type rawDuration struct {
	Minutes json.RawMessage `json:"minutes"`
	Seconds json.RawMessage `json:"seconds"`
}

// migrateSongs normalizes an arbitrarily-shaped persisted song list. A nil
// list means the field was absent and yields the full default album.
func migrateSongs(rawSongs []json.RawMessage, logger *slog.Logger) []album.Song {
	if rawSongs == nil {
		return album.DefaultSongs()
	}

	songs := make([]album.Song, 0, len(rawSongs))
	for _, rawMsg := range rawSongs {
		var raw rawSong
		// A non-object entry decodes as an all-defaults song.
		_ = json.Unmarshal(rawMsg, &raw)
		songs = append(songs, migrateSong(raw))
	}

	if hasDuplicateIDs(songs) {
		logger.Warn("duplicate song ids detected, reassigning sequential ids",
			slog.Int("songs", len(songs)))
		for i := range songs {
			songs[i].ID = i + 1
		}
	}
	return songs
}

func migrateSong(raw rawSong) album.Song {
	song := album.Song{
		ID:       int(numberOr(raw.ID, 0)),
		Title:    stringOr(raw.Title, ""),
		Stages:   migrateStages(raw.Stages),
		Tempo:    migrateTempo(raw.Tempo),
		Key:      migrateKey(raw.Key),
		Duration: migrateDuration(raw.Duration),
		IsDraft:  boolOr(raw.IsDraft),
	}
	return song
}

// migrateStages accepts the current ordered-sequence shape and the legacy
// stage-name→percentage mapping, which converts in document order. Anything
// else falls back to the default template.
func migrateStages(raw json.RawMessage) []album.Stage {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return album.DefaultStages()
	}

	var list []rawStageEntry
	if err := json.Unmarshal(raw, &list); err == nil {
		stages := make([]album.Stage, len(list))
		for i, entry := range list {
			stages[i] = album.Stage{
				Name:  entry.Name,
				Value: int(numberOr(entry.Value, 0)),
			}
		}
		return stages
	}

	if stages, ok := stagesFromLegacyMap(raw); ok {
		return stages
	}
	return album.DefaultStages()
}

type rawStageEntry struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// stagesFromLegacyMap walks the JSON object token by token so the stages
// keep the order they were written in; decoding through a Go map would
// scramble them.
func stagesFromLegacyMap(raw json.RawMessage) ([]album.Stage, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var stages []album.Stage
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		stages = append(stages, album.Stage{Name: name, Value: int(numberOr(value, 0))})
	}
	if stages == nil {
		stages = []album.Stage{}
	}
	return stages, true
}

func migrateTempo(raw json.RawMessage) int {
	var tempo float64
	if err := json.Unmarshal(raw, &tempo); err != nil {
		return album.DefaultTempo
	}
	if tempo < album.MinTempo || tempo > album.MaxTempo {
		return album.DefaultTempo
	}
	return int(math.Round(tempo))
}

func migrateKey(raw json.RawMessage) string {
	var key string
	if err := json.Unmarshal(raw, &key); err != nil {
		return ""
	}
	if strings.TrimSpace(key) == "" {
		return ""
	}
	return key
}

// migrateDuration keeps the stored pair only when both components are
// numeric. Numeric values pass through without re-clamping; the edit path
// clamps, so out-of-range values can only arrive from legacy data.
func migrateDuration(raw json.RawMessage) album.Duration {
	var dur rawDuration
	if err := json.Unmarshal(raw, &dur); err != nil {
		return album.Duration{}
	}
	minutes, okMin := asNumber(dur.Minutes)
	seconds, okSec := asNumber(dur.Seconds)
	if !okMin || !okSec {
		return album.Duration{}
	}
	return album.Duration{Minutes: int(minutes), Seconds: int(seconds)}
}

func hasDuplicateIDs(songs []album.Song) bool {
	seen := make(map[int]struct{}, len(songs))
	for _, s := range songs {
		if _, dup := seen[s.ID]; dup {
			return true
		}
		seen[s.ID] = struct{}{}
	}
	return false
}

func asNumber(raw json.RawMessage) (float64, bool) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func numberOr(raw json.RawMessage, fallback float64) float64 {
	if v, ok := asNumber(raw); ok {
		return v
	}
	return fallback
}

func stringOr(raw json.RawMessage, fallback string) string {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil || v == "" {
		return fallback
	}
	return v
}

func boolOr(raw json.RawMessage) bool {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v
}
