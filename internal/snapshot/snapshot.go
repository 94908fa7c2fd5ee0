package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"overdub/internal/album"
	"overdub/internal/logging"
)

// ErrMalformed indicates the buffer is not a parsable snapshot document.
// Callers keep their current state when they see it.
var ErrMalformed = errors.New("malformed snapshot")

// ExportFileName is the suggested name for exported snapshots.
const ExportFileName = "album_dashboard.json"

// Snapshot is the full persisted triple.
type Snapshot struct {
	Songs      []album.Song
	AlbumTitle string
	TargetISO  string
}

// Default returns the snapshot used when no persisted state exists.
func Default() Snapshot {
	def := album.Default()
	return Snapshot{Songs: def.Songs, AlbumTitle: def.Title, TargetISO: def.TargetISO}
}

type payload struct {
	Songs      []songRecord `json:"songs"`
	AlbumTitle string       `json:"albumTitle"`
	TargetISO  string       `json:"targetISO"`
}

type songRecord struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Stages   []stageRecord  `json:"stages"`
	Tempo    int            `json:"tempo"`
	Key      *string        `json:"key"`
	Duration durationRecord `json:"duration"`
	IsDraft  bool           `json:"isDraft"`
}

type stageRecord struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type durationRecord struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Marshal encodes the triple as the pretty-printed document used both for
// the store payload and for exports. Absent keys serialize as JSON null.
func Marshal(snap Snapshot) ([]byte, error) {
	doc := payload{
		Songs:      make([]songRecord, 0, len(snap.Songs)),
		AlbumTitle: snap.AlbumTitle,
		TargetISO:  snap.TargetISO,
	}
	for _, s := range snap.Songs {
		record := songRecord{
			ID:       s.ID,
			Title:    s.Title,
			Stages:   make([]stageRecord, 0, len(s.Stages)),
			Tempo:    s.Tempo,
			Duration: durationRecord{Minutes: s.Duration.Minutes, Seconds: s.Duration.Seconds},
			IsDraft:  s.IsDraft,
		}
		for _, stage := range s.Stages {
			record.Stages = append(record.Stages, stageRecord{Name: stage.Name, Value: stage.Value})
		}
		if s.Key != "" {
			key := s.Key
			record.Key = &key
		}
		doc.Songs = append(doc.Songs, record)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot buffer and migrates it to the current schema.
// Only an unparsable document fails; every recognizable shape, however
// partial, decodes to a valid snapshot. The logger receives the diagnostics
// emitted by repairs (duplicate song ids).
func Decode(data []byte, logger *slog.Logger) (Snapshot, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	snap := Snapshot{
		Songs:      migrateSongs(raw.Songs, logger),
		AlbumTitle: stringOr(raw.AlbumTitle, album.DefaultTitle),
		TargetISO:  stringOr(raw.TargetISO, album.DefaultTargetISO),
	}
	return snap, nil
}
