package album

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Musical modes accepted for a song key.
const (
	ModeMajor = "Major"
	ModeMinor = "Minor"
)

// noteValues lists the twelve pitch classes in their canonical spellings.
// Enharmonic pairs store the flat spelling except F#, matching the spelling
// conventions applied by NormalizeNote.
var noteValues = []string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

var (
	majorSpellings = map[string]string{
		"C#": "Db",
		"D#": "Eb",
		"G#": "Ab",
		"A#": "Bb",
	}
	minorSpellings = map[string]string{
		"Db": "C#",
	}
)

var titleCaser = cases.Title(language.Und)

// Notes returns the canonical pitch-class spellings in circle order.
func Notes() []string {
	out := make([]string, len(noteValues))
	copy(out, noteValues)
	return out
}

// ValidNote reports whether note names one of the twelve pitch classes,
// either in its canonical spelling or an enharmonic alternate that
// NormalizeNote knows how to respell.
func ValidNote(note string) bool {
	for _, n := range noteValues {
		if n == note {
			return true
		}
	}
	_, ok := majorSpellings[note]
	return ok
}

// ParseKey splits a stored key string into its note and mode tokens. Empty
// input means the song has no key and yields two empty tokens.
func ParseKey(key string) (note, mode string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ""
	}
	note, mode, _ = strings.Cut(key, " ")
	return note, mode
}

// NormalizeNote applies the canonical spelling convention for the given mode:
// sharps respell to flats under Major (C#→Db, D#→Eb, G#→Ab, A#→Bb) and Db
// respells to C# under Minor. Modes other than Minor normalize as Major, and
// unmapped notes pass through unchanged.
func NormalizeNote(note, mode string) string {
	if NormalizeMode(mode) == ModeMinor {
		if mapped, ok := minorSpellings[note]; ok {
			return mapped
		}
		return note
	}
	if mapped, ok := majorSpellings[note]; ok {
		return mapped
	}
	return note
}

// NormalizeMode canonicalizes a mode token ("minor", "MAJOR", ...). Anything
// that is not recognizably Minor is treated as Major.
func NormalizeMode(mode string) string {
	if titleCaser.String(strings.TrimSpace(mode)) == ModeMinor {
		return ModeMinor
	}
	return ModeMajor
}

// FormatKey builds the stored key string from a note and mode selection.
// An empty note clears the key entirely; a note without a mode defaults to
// Major. The note is respelled for the chosen mode before storage.
func FormatKey(note, mode string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return ""
	}
	normalizedMode := NormalizeMode(mode)
	return NormalizeNote(note, normalizedMode) + " " + normalizedMode
}
