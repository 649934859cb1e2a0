package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.wav")
	x := make([]float64, 512)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / float64(len(x)))
	}
	x[3] = 7 // clipped

	require.NoError(t, Write(path, x, 48000))
	y, sr, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 48000, sr)
	require.Len(t, y, len(x))

	x[3] = 1
	assert.InDeltaSlice(t, x, y, 1.0/32767)
}

func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not RIFF data"), 0o644))
	_, _, err := Read(path)
	assert.ErrorIs(t, err, ErrInvalid)

	_, _, err = Read(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
