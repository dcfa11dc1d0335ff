package encode

import (
	"gonum.org/v1/gonum/mat"

	"github.com/calliopedev/harmonia/music"
)

// NoteArray is the tabular projection of a note sequence: one row per note
// with pitch, duration, and timing columns. Pitch is a string value, so the
// table is split into a string column and a numeric block rather than one
// heterogeneous matrix: Pitches holds the pitch column and Values holds the
// duration/timing columns as an n-by-2 dense matrix.
type NoteArray struct {
	Pitches []string
	Values  *mat.Dense
}

// NotesToArray projects validated notes into a NoteArray. Empty input
// produces an empty array (Len 0, nil numeric block).
func NotesToArray(notes []music.MusicNote) *NoteArray {
	if len(notes) == 0 {
		return &NoteArray{}
	}

	pitches := make([]string, len(notes))
	values := mat.NewDense(len(notes), 2, nil)
	for i, note := range notes {
		pitches[i] = note.Pitch
		values.Set(i, 0, note.Duration)
		values.Set(i, 1, note.Timing)
	}

	return &NoteArray{Pitches: pitches, Values: values}
}

// Len returns the number of rows.
func (a *NoteArray) Len() int {
	return len(a.Pitches)
}

// Row returns the pitch, duration, and timing of row i.
func (a *NoteArray) Row(i int) (pitch string, duration, timing float64) {
	return a.Pitches[i], a.Values.At(i, 0), a.Values.At(i, 1)
}

// Durations returns the duration column.
func (a *NoteArray) Durations() []float64 {
	if a.Values == nil {
		return nil
	}
	return mat.Col(nil, 0, a.Values)
}

// Timings returns the timing column.
func (a *NoteArray) Timings() []float64 {
	if a.Values == nil {
		return nil
	}
	return mat.Col(nil, 1, a.Values)
}
