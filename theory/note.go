// Package theory holds the symbolic music data model: note tokens, parsed
// pitch/accidental/octave records, and scale construction.
package theory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/calliopedev/harmonia/logging"
)

// Accidental is a sharp or flat modifier on a pitch letter.
type Accidental string

const (
	AccidentalNone  Accidental = ""
	AccidentalSharp Accidental = "#"
	AccidentalFlat  Accidental = "b"
)

// Note represents a musical note with pitch letter, accidental, and octave.
// Pitch is always one of the uppercase letters A-G. Notes are value types;
// once built they are never mutated.
type Note struct {
	Pitch      string     `json:"pitch"`
	Accidental Accidental `json:"accidental,omitempty"`
	Octave     int        `json:"octave"`
}

// String renders the note back into token form, e.g. "C4", "D#5", "Eb2".
func (n Note) String() string {
	return n.Pitch + string(n.Accidental) + strconv.Itoa(n.Octave)
}

var noteTokenPattern = regexp.MustCompile(`^([A-Ga-g])([#b]?)(\d+)$`)

// ParseNote parses a note token (e.g. "C4", "d#5", "Eb2") into a Note.
// The pitch letter is normalized to uppercase. Any token that does not
// match letter + optional accidental + octave digits fails with ParseError.
func ParseNote(token string) (Note, error) {
	match := noteTokenPattern.FindStringSubmatch(token)
	if match == nil {
		err := &ParseError{Token: token, Reason: "must be letter A-G, optional # or b, octave digits"}
		logging.Error(err, "note parse failed", logging.Fields{"token": token})
		return Note{}, err
	}

	pitch := strings.ToUpper(match[1])
	accidental := Accidental(match[2])
	octave, err := strconv.Atoi(match[3])
	if err != nil {
		return Note{}, &ParseError{Token: token, Reason: "octave is not a number"}
	}

	// The pattern already constrains these; re-check so a future pattern
	// edit cannot silently widen the accepted set.
	if !strings.Contains("ABCDEFG", pitch) {
		return Note{}, &ParseError{Token: token, Reason: "pitch must be A-G"}
	}
	switch accidental {
	case AccidentalNone, AccidentalSharp, AccidentalFlat:
	default:
		return Note{}, &ParseError{Token: token, Reason: "accidental must be # or b"}
	}

	return Note{Pitch: pitch, Accidental: accidental, Octave: octave}, nil
}

// FormatNotes renders a sequence of notes as space-separated tokens.
func FormatNotes(notes []Note) string {
	tokens := make([]string, len(notes))
	for i, note := range notes {
		tokens[i] = note.String()
	}
	return strings.Join(tokens, " ")
}
