// Package music holds the ML-facing validation records: notes with duration
// and timing, chord progressions, and rhythmic patterns. Construction and
// validation are one step; a record that exists is a record that passed.
package music

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports a field-level or request-level constraint breach.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// MusicNote is a single note with pitch, duration in beats, and timing
// offset. Unlike theory.Note this is the flat ML-facing form: the pitch is
// kept as its token string.
type MusicNote struct {
	Pitch    string  `json:"pitch"`
	Duration float64 `json:"duration"`
	Timing   float64 `json:"timing"`
}

// Pitch here is case-sensitive: the letter must already be uppercase.
var pitchPattern = regexp.MustCompile(`^[A-G][#b]?[0-9]+$`)

// NewMusicNote builds a MusicNote, validating the pitch format
// (e.g. "C4", "A#3"). Duration and timing carry no range constraint.
func NewMusicNote(pitch string, duration, timing float64) (MusicNote, error) {
	if !pitchPattern.MatchString(pitch) {
		return MusicNote{}, &ValidationError{Field: "pitch", Reason: fmt.Sprintf("invalid pitch format: %s", pitch)}
	}
	return MusicNote{Pitch: pitch, Duration: duration, Timing: timing}, nil
}

// ChordProgression is a sequence of notes in a named tonal key.
type ChordProgression struct {
	Notes []MusicNote `json:"notes"`
	Key   string      `json:"key"`
}

// NewChordProgression builds a ChordProgression. The key must be non-empty
// after trimming whitespace.
func NewChordProgression(notes []MusicNote, key string) (ChordProgression, error) {
	if strings.TrimSpace(key) == "" {
		return ChordProgression{}, &ValidationError{Field: "key", Reason: "key cannot be empty"}
	}
	return ChordProgression{Notes: notes, Key: key}, nil
}

// RhythmicPattern is a sequence of beat durations at a tempo.
type RhythmicPattern struct {
	Beats []float64 `json:"beats"`
	Tempo float64   `json:"tempo"`
}

// NewRhythmicPattern builds a RhythmicPattern. Tempo must be positive.
func NewRhythmicPattern(beats []float64, tempo float64) (RhythmicPattern, error) {
	if tempo <= 0 {
		return RhythmicPattern{}, &ValidationError{Field: "tempo", Reason: "tempo must be a positive number"}
	}
	return RhythmicPattern{Beats: beats, Tempo: tempo}, nil
}
