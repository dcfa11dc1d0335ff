package music

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DefaultBeatResolution is the number of grid samples per beat used when
// rasterizing a pattern's onsets for spectral analysis.
const DefaultBeatResolution = 16

// BeatSpectrum computes the magnitude spectrum of the pattern's onset
// impulse train, rasterized at resolution samples per beat. The spectrum
// covers frequencies up to the Nyquist bin; bin k corresponds to a pulse of
// k cycles over the whole pattern. Patterns with fewer than two beats have
// no periodicity to measure and return nil.
func (p RhythmicPattern) BeatSpectrum(resolution int) []float64 {
	if resolution <= 0 {
		resolution = DefaultBeatResolution
	}
	if len(p.Beats) < 2 {
		return nil
	}

	// Onset times are the running sums of the beat durations.
	span := 0.0
	onsets := make([]float64, len(p.Beats))
	for i, beat := range p.Beats {
		onsets[i] = span
		span += beat
	}
	if span <= 0 {
		return nil
	}

	grid := make([]float64, int(math.Ceil(span*float64(resolution))))
	if len(grid) < 2 {
		return nil
	}
	for _, onset := range onsets {
		idx := int(math.Round(onset * float64(resolution)))
		if idx >= 0 && idx < len(grid) {
			grid[idx] = 1.0
		}
	}

	spectrum := fft.FFTReal(grid)
	magnitudes := make([]float64, len(spectrum)/2+1)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(spectrum[i])
	}
	return magnitudes
}

// ImpliedTempo estimates the tempo of the dominant pulse in the pattern,
// in BPM, by scaling the declared tempo by the strongest periodicity in the
// beat spectrum. A uniform pattern of whole beats implies the declared
// tempo itself. Returns 0 when the pattern is too short to analyze.
func (p RhythmicPattern) ImpliedTempo() float64 {
	resolution := DefaultBeatResolution
	magnitudes := p.BeatSpectrum(resolution)
	if len(magnitudes) < 2 {
		return 0
	}

	// Skip the DC bin; pick the strongest remaining periodicity.
	best := 1
	for k := 2; k < len(magnitudes); k++ {
		if magnitudes[k] > magnitudes[best] {
			best = k
		}
	}

	span := 0.0
	for _, beat := range p.Beats {
		span += beat
	}
	gridLen := int(math.Ceil(span * float64(resolution)))
	if gridLen == 0 {
		return 0
	}

	// Bin index -> cycles per grid sample -> cycles per beat.
	cyclesPerBeat := float64(best) / float64(gridLen) * float64(resolution)
	return p.Tempo * cyclesPerBeat
}
