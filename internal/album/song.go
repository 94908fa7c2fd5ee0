package album

import (
	"fmt"
	"math"
	"strings"
)

// Stage is a named production task within a song. Stages carry no identifier
// of their own; identity is the position inside the song's stage sequence.
type Stage struct {
	Name  string
	Value int
}

// Duration is a song length split into independently-clamped components.
type Duration struct {
	Minutes int
	Seconds int
}

// Song is one track on the album. The zero ID is never assigned; IDs are
// unique across the album and travel with the song through reorders.
type Song struct {
	ID       int
	Title    string
	Stages   []Stage
	Tempo    int
	Key      string // "" means no key; otherwise "<note> <mode>"
	Duration Duration
	IsDraft  bool
}

// StagePatch carries the fields of a single stage edit. Nil fields leave the
// existing value in place.
type StagePatch struct {
	Name  *string
	Value *int
}

// SongCompletion derives the song's overall progress as the rounded average
// of its clamped stage percentages. A song with no stages is 0% complete.
// Halves round away from zero.
func SongCompletion(s Song) int {
	if len(s.Stages) == 0 {
		return 0
	}
	sum := 0
	for _, stage := range s.Stages {
		sum += ClampPercent(stage.Value)
	}
	return int(math.Round(float64(100*sum) / float64(len(s.Stages)*100)))
}

// SetStage replaces the stage at index with a merge of patch over the
// existing stage. A blank patched name keeps the prior name, and patched
// values are clamped so the [0,100] invariant holds at rest. The index must
// come from the current sequence.
func SetStage(stages []Stage, index int, patch StagePatch) []Stage {
	out := cloneStages(stages)
	if patch.Name != nil {
		if trimmed := strings.TrimSpace(*patch.Name); trimmed != "" {
			out[index].Name = trimmed
		}
	}
	if patch.Value != nil {
		out[index].Value = ClampPercent(*patch.Value)
	}
	return out
}

// RemoveStage drops the stage at index. Out-of-range indices return the
// sequence unchanged.
func RemoveStage(stages []Stage, index int) []Stage {
	if index < 0 || index >= len(stages) {
		return stages
	}
	out := make([]Stage, 0, len(stages)-1)
	out = append(out, stages[:index]...)
	return append(out, stages[index+1:]...)
}

// AddStage appends a fresh zero-progress stage named after its position.
func AddStage(stages []Stage) []Stage {
	out := cloneStages(stages)
	return append(out, Stage{Name: fmt.Sprintf("Stage %d", len(stages)+1)})
}

// MoveStage removes the stage at from and reinserts it at to, shifting the
// elements in between (splice semantics, not a swap). Equal or out-of-range
// indices are silent no-ops.
func MoveStage(stages []Stage, from, to int) []Stage {
	if from == to || from < 0 || from >= len(stages) || to < 0 || to >= len(stages) {
		return stages
	}
	out := cloneStages(stages)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, Stage{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}

// Rename updates the song title, keeping the prior title when the submitted
// text is blank after trimming.
func Rename(s Song, title string) Song {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		s.Title = trimmed
	}
	return s
}

func cloneStages(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}
