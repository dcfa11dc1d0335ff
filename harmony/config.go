package harmony

// Config holds the request validation bounds. The defaults match what the
// downstream model was trained against.
type Config struct {
	MinMelodyNotes int `json:"min_melody_notes"`
	MinChords      int `json:"min_chords"`
	TempoMin       int `json:"tempo_min"` // BPM, inclusive
	TempoMax       int `json:"tempo_max"` // BPM, inclusive
}

// DefaultConfig returns the standard request bounds.
func DefaultConfig() *Config {
	return &Config{
		MinMelodyNotes: 5,
		MinChords:      2,
		TempoMin:       40,
		TempoMax:       240,
	}
}
