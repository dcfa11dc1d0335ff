package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		pitch      string
		accidental Accidental
		octave     int
	}{
		{
			name:       "natural note",
			token:      "C4",
			pitch:      "C",
			accidental: AccidentalNone,
			octave:     4,
		},
		{
			name:       "sharp note",
			token:      "D#5",
			pitch:      "D",
			accidental: AccidentalSharp,
			octave:     5,
		},
		{
			name:       "flat note",
			token:      "Eb2",
			pitch:      "E",
			accidental: AccidentalFlat,
			octave:     2,
		},
		{
			name:       "lowercase letter is uppercased",
			token:      "g3",
			pitch:      "G",
			accidental: AccidentalNone,
			octave:     3,
		},
		{
			name:       "lowercase with accidental",
			token:      "a#0",
			pitch:      "A",
			accidental: AccidentalSharp,
			octave:     0,
		},
		{
			name:       "multi-digit octave",
			token:      "F10",
			pitch:      "F",
			accidental: AccidentalNone,
			octave:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := ParseNote(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.pitch, note.Pitch)
			assert.Equal(t, tt.accidental, note.Accidental)
			assert.Equal(t, tt.octave, note.Octave)
		})
	}
}

func TestParseNote_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "missing octave", token: "C"},
		{name: "letter out of range", token: "H4"},
		{name: "bad accidental", token: "C!4"},
		{name: "negative octave", token: "C-1"},
		{name: "trailing garbage", token: "C4x"},
		{name: "accidental only", token: "#4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNote(tt.token)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.token, parseErr.Token)
		})
	}
}

func TestParseNote_Roundtrip(t *testing.T) {
	// Parsing then formatting recovers the normalized token.
	tokens := map[string]string{
		"C4":  "C4",
		"d#5": "D#5",
		"eb2": "Eb2",
		"B0":  "B0",
	}

	for token, normalized := range tokens {
		note, err := ParseNote(token)
		require.NoError(t, err)
		assert.Equal(t, normalized, note.String())
	}
}

func TestFormatNotes(t *testing.T) {
	notes := []Note{
		{Pitch: "C", Octave: 4},
		{Pitch: "D", Accidental: AccidentalSharp, Octave: 5},
		{Pitch: "E", Accidental: AccidentalFlat, Octave: 2},
	}
	assert.Equal(t, "C4 D#5 Eb2", FormatNotes(notes))
	assert.Equal(t, "", FormatNotes(nil))
}
