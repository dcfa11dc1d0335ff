// Package harmony assembles validated harmony-generation requests into the
// flat feature vector the prediction model consumes, and decodes the model's
// numeric output back into MIDI note codes.
package harmony

import (
	"fmt"

	"github.com/calliopedev/harmonia/encode"
	"github.com/calliopedev/harmonia/logging"
	"github.com/calliopedev/harmonia/music"
)

// MusicInput is a harmony-generation request.
type MusicInput struct {
	Melody []int    `json:"melody"` // MIDI note values
	Chords []string `json:"chords"` // chord names, e.g. "Cmaj7", "G7"
	Tempo  int      `json:"tempo"`  // BPM
}

// Predictor is the external prediction model boundary. It accepts one flat
// feature vector of length len(melody) + 7*len(chords) + 1 and returns a
// numeric vector whose length determines the output note count. Retries and
// timeouts are the implementation's concern, not this package's.
type Predictor interface {
	Predict(features []float64) ([]float64, error)
}

// Service validates harmony requests, encodes them for the predictor, and
// decodes predictions into MIDI notes.
type Service struct {
	predictor Predictor
	encoder   *encode.ChordEncoder
	config    *Config
	logger    logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithConfig overrides the default request bounds.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger injects the logger the service reports through.
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a harmony service around a predictor.
func NewService(predictor Predictor, opts ...Option) *Service {
	s := &Service{
		predictor: predictor,
		encoder:   encode.NewChordEncoder(),
		config:    DefaultConfig(),
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces harmony notes for the given input: validate, encode,
// predict, decode. Validation failures surface before any encoding work;
// predictor failures are logged and returned unchanged.
func (s *Service) Generate(input MusicInput) ([]int, error) {
	if err := s.validateInput(input); err != nil {
		s.logger.Error(err, "harmony request rejected")
		return nil, err
	}

	s.logger.Info("generating harmony", logging.Fields{
		"melody_len": len(input.Melody),
		"chords":     len(input.Chords),
		"tempo":      input.Tempo,
	})

	features := s.ProcessInput(input)
	prediction, err := s.predictor.Predict(features)
	if err != nil {
		s.logger.Error(err, "prediction failed", logging.Fields{"features_len": len(features)})
		return nil, err
	}

	return convertToNotes(prediction), nil
}

func (s *Service) validateInput(input MusicInput) error {
	if len(input.Melody) < s.config.MinMelodyNotes {
		return &music.ValidationError{
			Field:  "melody",
			Reason: fmt.Sprintf("melody must contain at least %d notes", s.config.MinMelodyNotes),
		}
	}
	if len(input.Chords) < s.config.MinChords {
		return &music.ValidationError{
			Field:  "chords",
			Reason: fmt.Sprintf("at least %d chords are required", s.config.MinChords),
		}
	}
	if input.Tempo < s.config.TempoMin || input.Tempo > s.config.TempoMax {
		return &music.ValidationError{
			Field:  "tempo",
			Reason: fmt.Sprintf("tempo must be between %d and %d BPM", s.config.TempoMin, s.config.TempoMax),
		}
	}
	return nil
}

// ProcessInput assembles the flat feature vector: melody values, then each
// chord's one-hot vector, then the tempo, concatenated in that order.
func (s *Service) ProcessInput(input MusicInput) []float64 {
	features := make([]float64, 0, len(input.Melody)+s.encoder.Dim()*len(input.Chords)+1)
	for _, note := range input.Melody {
		features = append(features, float64(note))
	}
	for _, chord := range input.Chords {
		features = append(features, s.encoder.Encode(chord)...)
	}
	features = append(features, float64(input.Tempo))
	return features
}

// convertToNotes truncates each prediction element to an integer MIDI note.
// The prediction's length is taken as-is; the core does not validate it.
func convertToNotes(prediction []float64) []int {
	notes := make([]int, len(prediction))
	for i, value := range prediction {
		notes[i] = int(value)
	}
	return notes
}
