// Package encode turns validated symbolic music into the numeric forms the
// prediction model consumes: one-hot chord vectors and tabular note arrays.
package encode

// ChordVectorDim is the dimensionality of a chord vector, fixed by the
// vocabulary size the model was trained against.
const ChordVectorDim = 7

// ChordEncoder maps a closed vocabulary of chord names to one-hot vectors.
// The vocabulary order fixes each chord's hot position and must not change
// without retraining the downstream model.
type ChordEncoder struct {
	vocabulary []string
	positions  map[string]int
}

// NewChordEncoder creates an encoder over the fixed chord vocabulary.
func NewChordEncoder() *ChordEncoder {
	vocabulary := []string{"Cmaj7", "G7", "Am7", "D7", "Em7", "A7", "Fmaj7"}
	positions := make(map[string]int, len(vocabulary))
	for i, chord := range vocabulary {
		positions[chord] = i
	}
	return &ChordEncoder{vocabulary: vocabulary, positions: positions}
}

// Encode maps a chord name to its one-hot vector. Names outside the
// vocabulary map to the all-zero vector rather than an error; callers that
// need to distinguish the two use EncodeKnown.
func (e *ChordEncoder) Encode(chord string) []float64 {
	vector, _ := e.EncodeKnown(chord)
	return vector
}

// EncodeKnown is Encode plus a flag reporting whether the chord was in the
// vocabulary. The vector is identical to Encode's in both cases.
func (e *ChordEncoder) EncodeKnown(chord string) ([]float64, bool) {
	vector := make([]float64, ChordVectorDim)
	position, known := e.positions[chord]
	if known {
		vector[position] = 1.0
	}
	return vector, known
}

// Vocabulary returns the chord names in their fixed encoding order.
func (e *ChordEncoder) Vocabulary() []string {
	vocabulary := make([]string, len(e.vocabulary))
	copy(vocabulary, e.vocabulary)
	return vocabulary
}

// Dim returns the chord vector dimensionality.
func (e *ChordEncoder) Dim() int {
	return ChordVectorDim
}
