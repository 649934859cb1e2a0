package wavesynth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWaveform(t *testing.T) {
	for w := Silence; w < numWaveforms; w++ {
		got, err := ParseWaveform(w.String())
		assert.NoError(t, err)
		assert.Equal(t, w, got)
	}
	got, err := ParseWaveform("Square303")
	assert.NoError(t, err)
	assert.Equal(t, Square303, got)

	_, err = ParseWaveform("wobble")
	assert.ErrorIs(t, err, ErrUnknownWaveform)
}

func TestWaveformString(t *testing.T) {
	assert.Equal(t, "saw303", Saw303.String())
	assert.Equal(t, "Waveform(42)", Waveform(42).String())
	assert.Equal(t, "Waveform(-1)", Waveform(-1).String())
}

func TestWaveforms(t *testing.T) {
	w := Waveforms()
	assert.Equal(t, Silence, w[0])
	assert.NotContains(t, w, Custom)
	assert.Len(t, w, int(Custom))
}
