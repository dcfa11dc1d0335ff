package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calliopedev/harmonia/music"
)

func mustNote(t *testing.T, pitch string, duration, timing float64) music.MusicNote {
	t.Helper()
	note, err := music.NewMusicNote(pitch, duration, timing)
	require.NoError(t, err)
	return note
}

func TestNotesToArray(t *testing.T) {
	notes := []music.MusicNote{
		mustNote(t, "C4", 1.0, 0.0),
		mustNote(t, "E4", 0.5, 1.0),
		mustNote(t, "G4", 2.0, 1.5),
	}

	array := NotesToArray(notes)
	require.Equal(t, 3, array.Len())

	for i, note := range notes {
		pitch, duration, timing := array.Row(i)
		assert.Equal(t, note.Pitch, pitch)
		assert.Equal(t, note.Duration, duration)
		assert.Equal(t, note.Timing, timing)
	}

	assert.Equal(t, []float64{1.0, 0.5, 2.0}, array.Durations())
	assert.Equal(t, []float64{0.0, 1.0, 1.5}, array.Timings())
}

func TestNotesToArray_Empty(t *testing.T) {
	array := NotesToArray(nil)
	assert.Equal(t, 0, array.Len())
	assert.Nil(t, array.Values)
	assert.Nil(t, array.Durations())
	assert.Nil(t, array.Timings())
}
