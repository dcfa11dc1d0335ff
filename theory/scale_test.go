package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScale_Major(t *testing.T) {
	scale, err := NewScale("C4", "major")
	require.NoError(t, err)

	notes := scale.Notes()
	require.Len(t, notes, 7)

	root, err := ParseNote("C4")
	require.NoError(t, err)
	assert.Equal(t, root, notes[0])

	// Letters are fixed and anchored at the root's octave.
	assert.Equal(t, "C4 D4 E4 F4 G4 A4 B4", FormatNotes(notes))
}

func TestNewScale_Minor(t *testing.T) {
	scale, err := NewScale("C4", "minor")
	require.NoError(t, err)

	notes := scale.Notes()
	require.Len(t, notes, 7)

	// The closing C sits one octave above the root.
	assert.Equal(t, 5, notes[6].Octave)
	assert.Equal(t, "C4 D4 F4 G4 A4 B4 C5", FormatNotes(notes))
}

func TestNewScale_CaseInsensitiveType(t *testing.T) {
	for _, scaleType := range []string{"MAJOR", "Major", "major"} {
		scale, err := NewScale("A3", scaleType)
		require.NoError(t, err)
		assert.Len(t, scale.Notes(), 7)
	}
}

func TestNewScale_SharpRoot(t *testing.T) {
	scale, err := NewScale("D#5", "major")
	require.NoError(t, err)

	notes := scale.Notes()
	assert.Equal(t, Note{Pitch: "D", Accidental: AccidentalSharp, Octave: 5}, notes[0])
	for _, note := range notes[1:] {
		assert.Equal(t, 5, note.Octave)
	}
}

func TestNewScale_UnsupportedType(t *testing.T) {
	_, err := NewScale("C4", "dorian")
	require.Error(t, err)

	var scaleErr *UnsupportedScaleTypeError
	require.True(t, errors.As(err, &scaleErr))
	assert.Equal(t, "dorian", scaleErr.ScaleType)
}

func TestNewScale_BadRoot(t *testing.T) {
	_, err := NewScale("X9", "major")
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}
