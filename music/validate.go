package music

import (
	"fmt"

	"github.com/calliopedev/harmonia/logging"
)

// RawData is the loosely-typed batch validation input: optional "notes"
// (sequence of note records), "chords" (sequence of progression records),
// and "rhythm" (single record).
type RawData map[string]any

// ValidatedMusic holds the outcome of a successful batch validation.
type ValidatedMusic struct {
	Notes  []MusicNote
	Chords []ChordProgression
	Rhythm RhythmicPattern
}

// ValidateMusicData validates a raw record as a unit: every note, every
// chord progression, and the rhythm must pass, or the whole batch fails
// with the first error encountered wrapped with context.
func ValidateMusicData(data RawData) (*ValidatedMusic, error) {
	return ValidateMusicDataWith(data, logging.Default())
}

// ValidateMusicDataWith is ValidateMusicData with an explicit logger.
func ValidateMusicDataWith(data RawData, logger logging.Logger) (*ValidatedMusic, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger.Info("validating music data")

	validated, err := validateMusicData(data)
	if err != nil {
		logger.Error(err, "validation error")
		return nil, fmt.Errorf("invalid music data: %w", err)
	}
	return validated, nil
}

func validateMusicData(data RawData) (*ValidatedMusic, error) {
	rawNotes, err := asRecordList(data, "notes")
	if err != nil {
		return nil, err
	}
	notes := make([]MusicNote, 0, len(rawNotes))
	for _, raw := range rawNotes {
		note, err := validateNoteRecord(raw)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	rawChords, err := asRecordList(data, "chords")
	if err != nil {
		return nil, err
	}
	chords := make([]ChordProgression, 0, len(rawChords))
	for _, raw := range rawChords {
		chord, err := validateChordRecord(raw)
		if err != nil {
			return nil, err
		}
		chords = append(chords, chord)
	}

	rawRhythm, _ := data["rhythm"].(map[string]any)
	rhythm, err := validateRhythmRecord(rawRhythm)
	if err != nil {
		return nil, err
	}

	return &ValidatedMusic{Notes: notes, Chords: chords, Rhythm: rhythm}, nil
}

func validateNoteRecord(raw map[string]any) (MusicNote, error) {
	pitch, ok := raw["pitch"].(string)
	if !ok {
		return MusicNote{}, &ValidationError{Field: "pitch", Reason: "pitch must be a string"}
	}
	duration, err := asFloat(raw, "duration")
	if err != nil {
		return MusicNote{}, err
	}
	timing, err := asFloat(raw, "timing")
	if err != nil {
		return MusicNote{}, err
	}
	return NewMusicNote(pitch, duration, timing)
}

func validateChordRecord(raw map[string]any) (ChordProgression, error) {
	key, ok := raw["key"].(string)
	if !ok {
		return ChordProgression{}, &ValidationError{Field: "key", Reason: "key must be a string"}
	}
	rawNotes, err := asRecordList(raw, "notes")
	if err != nil {
		return ChordProgression{}, err
	}
	notes := make([]MusicNote, 0, len(rawNotes))
	for _, rawNote := range rawNotes {
		note, err := validateNoteRecord(rawNote)
		if err != nil {
			return ChordProgression{}, err
		}
		notes = append(notes, note)
	}
	return NewChordProgression(notes, key)
}

func validateRhythmRecord(raw map[string]any) (RhythmicPattern, error) {
	tempo, err := asFloat(raw, "tempo")
	if err != nil {
		return RhythmicPattern{}, err
	}

	rawBeats, ok := raw["beats"].([]any)
	if !ok {
		return RhythmicPattern{}, &ValidationError{Field: "beats", Reason: "beats must be a sequence"}
	}
	beats := make([]float64, 0, len(rawBeats))
	for _, rawBeat := range rawBeats {
		beat, ok := toFloat(rawBeat)
		if !ok {
			return RhythmicPattern{}, &ValidationError{Field: "beats", Reason: fmt.Sprintf("beat is not a number: %v", rawBeat)}
		}
		beats = append(beats, beat)
	}

	return NewRhythmicPattern(beats, tempo)
}

func asRecordList(data map[string]any, field string) ([]map[string]any, error) {
	raw, present := data[field]
	if !present {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Field: field, Reason: "must be a sequence"}
	}
	records := make([]map[string]any, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: field, Reason: fmt.Sprintf("element is not a record: %v", item)}
		}
		records = append(records, record)
	}
	return records, nil
}

func asFloat(raw map[string]any, field string) (float64, error) {
	value, ok := toFloat(raw[field])
	if !ok {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%s must be a number", field)}
	}
	return value, nil
}

func toFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}
