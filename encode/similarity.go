package encode

import "gonum.org/v1/gonum/floats"

// CosineSimilarity computes the cosine similarity between two equal-length
// vectors. Zero-norm inputs (e.g. two unknown-chord encodings) yield 0
// rather than NaN.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	dotProduct := floats.Dot(a, b)
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)

	if normA < 1e-10 || normB < 1e-10 {
		return 0.0
	}
	return dotProduct / (normA * normB)
}
