package album_test

import (
	"testing"

	"overdub/internal/album"
)

func TestNormalizeNote(t *testing.T) {
	cases := []struct {
		note     string
		mode     string
		expected string
	}{
		{"C#", "Major", "Db"},
		{"D#", "Major", "Eb"},
		{"G#", "Major", "Ab"},
		{"A#", "Major", "Bb"},
		{"Db", "Minor", "C#"},
		{"F", "Major", "F"},
		{"Eb", "Minor", "Eb"},
		// Unknown modes normalize as Major.
		{"C#", "Dorian", "Db"},
		{"C#", "", "Db"},
	}
	for _, tc := range cases {
		if got := album.NormalizeNote(tc.note, tc.mode); got != tc.expected {
			t.Fatalf("NormalizeNote(%q, %q) = %q, expected %q", tc.note, tc.mode, got, tc.expected)
		}
	}
}

func TestParseKey(t *testing.T) {
	note, mode := album.ParseKey("Db Major")
	if note != "Db" || mode != "Major" {
		t.Fatalf("ParseKey(\"Db Major\") = %q, %q", note, mode)
	}

	note, mode = album.ParseKey("")
	if note != "" || mode != "" {
		t.Fatalf("ParseKey(\"\") = %q, %q, expected empty tokens", note, mode)
	}

	// Only the first space separates; no mode token is fine.
	note, mode = album.ParseKey("F#")
	if note != "F#" || mode != "" {
		t.Fatalf("ParseKey(\"F#\") = %q, %q", note, mode)
	}
}

func TestFormatKey(t *testing.T) {
	cases := []struct {
		note     string
		mode     string
		expected string
	}{
		{"", "Major", ""},
		{"C#", "", "Db Major"},
		{"C#", "Major", "Db Major"},
		{"Db", "minor", "C# Minor"},
		{"A", "MINOR", "A Minor"},
		{"F", "Major", "F Major"},
	}
	for _, tc := range cases {
		if got := album.FormatKey(tc.note, tc.mode); got != tc.expected {
			t.Fatalf("FormatKey(%q, %q) = %q, expected %q", tc.note, tc.mode, got, tc.expected)
		}
	}
}

func TestValidNote(t *testing.T) {
	for _, note := range album.Notes() {
		if !album.ValidNote(note) {
			t.Fatalf("canonical note %q rejected", note)
		}
	}
	for _, note := range []string{"C#", "D#", "G#", "A#"} {
		if !album.ValidNote(note) {
			t.Fatalf("sharp spelling %q rejected", note)
		}
	}
	for _, note := range []string{"Zebra", "H", "c", "db", ""} {
		if album.ValidNote(note) {
			t.Fatalf("expected %q to be rejected", note)
		}
	}
}

func TestNotesReturnsCopy(t *testing.T) {
	notes := album.Notes()
	if len(notes) != 12 {
		t.Fatalf("expected 12 pitch classes, got %d", len(notes))
	}
	notes[0] = "X"
	if album.Notes()[0] != "C" {
		t.Fatal("Notes() exposed internal slice")
	}
}
