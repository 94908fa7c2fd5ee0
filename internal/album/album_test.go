package album_test

import (
	"testing"

	"overdub/internal/album"
)

func songWithCompletion(id, pct int) album.Song {
	return album.Song{ID: id, Stages: []album.Stage{{Name: "Only", Value: pct}}}
}

func TestDefault(t *testing.T) {
	def := album.Default()
	if def.Title != "Album Dashboard" {
		t.Fatalf("unexpected default title %q", def.Title)
	}
	if def.TargetISO == "" {
		t.Fatal("expected a default deadline")
	}
	if len(def.Songs) != 12 {
		t.Fatalf("expected 12 default songs, got %d", len(def.Songs))
	}
	for i, s := range def.Songs {
		if s.ID != i+1 {
			t.Fatalf("song %d has id %d", i, s.ID)
		}
		if len(s.Stages) != 8 {
			t.Fatalf("song %d has %d stages", i, len(s.Stages))
		}
		if s.Tempo != album.DefaultTempo || s.Key != "" || s.IsDraft {
			t.Fatalf("unexpected defaults on song %d: %+v", i, s)
		}
		if s.Duration != (album.Duration{}) {
			t.Fatalf("song %d has non-zero duration", i)
		}
	}
	if def.Songs[0].Stages[0].Name != "Demo" || def.Songs[0].Stages[7].Name != "Mix" {
		t.Fatalf("unexpected stage template: %+v", def.Songs[0].Stages)
	}
}

func TestAlbumCompletion(t *testing.T) {
	songs := []album.Song{songWithCompletion(1, 100), songWithCompletion(2, 0)}
	if got := album.AlbumCompletion(songs); got != 50 {
		t.Fatalf("AlbumCompletion = %d, expected 50", got)
	}
	if got := album.AlbumCompletion(nil); got != 0 {
		t.Fatalf("AlbumCompletion of empty album = %d", got)
	}

	// Drafts are included in the album average.
	draft := songWithCompletion(3, 100)
	draft.IsDraft = true
	if got := album.AlbumCompletion([]album.Song{songWithCompletion(1, 0), draft}); got != 50 {
		t.Fatalf("AlbumCompletion with draft = %d, expected 50", got)
	}
}

func TestEligibleCount(t *testing.T) {
	songs := []album.Song{
		songWithCompletion(1, 90),
		songWithCompletion(2, 40),
		songWithCompletion(3, 100),
	}
	// Drafts count toward eligibility; only total duration excludes them.
	songs[2].IsDraft = true
	if got := album.EligibleCount(songs, 75); got != 2 {
		t.Fatalf("EligibleCount = %d, expected 2", got)
	}
	if got := album.EligibleCount(songs, 95); got != 1 {
		t.Fatalf("EligibleCount at 95 = %d, expected 1", got)
	}
}

func TestTotalDurationMinutes(t *testing.T) {
	draft := album.Song{ID: 1, IsDraft: true, Duration: album.Duration{Minutes: 10}}
	kept := album.Song{ID: 2, Duration: album.Duration{Minutes: 5}}
	if got := album.TotalDurationMinutes([]album.Song{draft, kept}); got != 5 {
		t.Fatalf("TotalDurationMinutes = %d, expected 5", got)
	}

	// Seconds accumulate before the single floor division.
	a := album.Song{ID: 1, Duration: album.Duration{Seconds: 30}}
	b := album.Song{ID: 2, Duration: album.Duration{Seconds: 30}}
	if got := album.TotalDurationMinutes([]album.Song{a, b}); got != 1 {
		t.Fatalf("TotalDurationMinutes of 0:30 + 0:30 = %d, expected 1", got)
	}

	// Negative legacy components read as zero.
	c := album.Song{ID: 3, Duration: album.Duration{Minutes: -2, Seconds: 90}}
	if got := album.TotalDurationMinutes([]album.Song{c}); got != 1 {
		t.Fatalf("TotalDurationMinutes with negative minutes = %d, expected 1", got)
	}
}

func TestUpdateSong(t *testing.T) {
	songs := []album.Song{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}

	updated := album.UpdateSong(songs, album.Song{ID: 2, Title: "Two (final)"})
	if updated[1].Title != "Two (final)" {
		t.Fatalf("unexpected title %q", updated[1].Title)
	}
	if songs[1].Title != "Two" {
		t.Fatal("input slice mutated")
	}

	same := album.UpdateSong(songs, album.Song{ID: 99, Title: "Ghost"})
	if len(same) != 2 || same[0].Title != "One" || same[1].Title != "Two" {
		t.Fatalf("unknown id modified collection: %+v", same)
	}
}

func TestFindSong(t *testing.T) {
	songs := []album.Song{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}
	s, ok := album.FindSong(songs, 2)
	if !ok || s.Title != "Two" {
		t.Fatalf("FindSong(2) = %+v, %v", s, ok)
	}
	if _, ok := album.FindSong(songs, 7); ok {
		t.Fatal("expected lookup miss for id 7")
	}
}

func TestMoveSong(t *testing.T) {
	songs := []album.Song{{ID: 1}, {ID: 2}, {ID: 3}}

	moved := album.MoveSong(songs, 0, 2)
	if moved[0].ID != 2 || moved[1].ID != 3 || moved[2].ID != 1 {
		t.Fatalf("MoveSong(0, 2) produced ids %d,%d,%d", moved[0].ID, moved[1].ID, moved[2].ID)
	}

	if got := album.MoveSong(songs, 1, 1); got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
		t.Fatalf("same-index move changed order: %+v", got)
	}
	if got := album.MoveSong(songs, -1, 2); got[0].ID != 1 {
		t.Fatalf("invalid source index changed order: %+v", got)
	}
}
