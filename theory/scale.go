package theory

import (
	"strings"

	"github.com/calliopedev/harmonia/logging"
)

// Scale represents a musical scale with a root note and scale type. The
// 7-note sequence is generated once at construction and cached for the
// scale's lifetime; the scale owns it exclusively.
type Scale struct {
	Root      string
	ScaleType string
	notes     []Note
}

// NewScale builds a scale from a root note token and a scale type
// ("major" or "minor", case-insensitive).
//
// The letter sequence is fixed and anchored at the root's octave: major
// emits root, D, E, F, G, A, B; minor emits root, D, F, G, A, B, then C one
// octave up. The letters are not transposed by scale-step distance from
// the root.
func NewScale(root, scaleType string) (*Scale, error) {
	rootNote, err := ParseNote(root)
	if err != nil {
		logging.Error(err, "scale generation failed", logging.Fields{"root": root})
		return nil, err
	}

	var notes []Note
	switch strings.ToLower(scaleType) {
	case "major":
		notes = []Note{
			rootNote,
			{Pitch: "D", Octave: rootNote.Octave},
			{Pitch: "E", Octave: rootNote.Octave},
			{Pitch: "F", Octave: rootNote.Octave},
			{Pitch: "G", Octave: rootNote.Octave},
			{Pitch: "A", Octave: rootNote.Octave},
			{Pitch: "B", Octave: rootNote.Octave},
		}
	case "minor":
		notes = []Note{
			rootNote,
			{Pitch: "D", Octave: rootNote.Octave},
			{Pitch: "F", Octave: rootNote.Octave},
			{Pitch: "G", Octave: rootNote.Octave},
			{Pitch: "A", Octave: rootNote.Octave},
			{Pitch: "B", Octave: rootNote.Octave},
			{Pitch: "C", Octave: rootNote.Octave + 1},
		}
	default:
		err := &UnsupportedScaleTypeError{ScaleType: scaleType}
		logging.Error(err, "scale generation failed", logging.Fields{"root": root})
		return nil, err
	}

	return &Scale{Root: root, ScaleType: scaleType, notes: notes}, nil
}

// Notes returns the cached note sequence of the scale.
func (s *Scale) Notes() []Note {
	return s.notes
}
