// Package wavio moves single-channel float audio in and out of WAV files.
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var ErrInvalid = errors.New("not a valid WAV file")

const bitDepth = 16

// Write stores x as 16-bit mono PCM.  Samples are clipped to [-1, 1].
func Write(path string, x []float64, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	max := float64(audio.IntMaxSignedValue(bitDepth))
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(x)),
		SourceBitDepth: bitDepth,
	}
	for i, x := range x {
		buf.Data[i] = int(math.Round(math.Max(-1, math.Min(1, x)) * max))
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: writing %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: writing %s: %w", path, err)
	}
	return nil
}

// Read returns the first channel of a PCM WAV file scaled to [-1, 1], and
// its sample rate.
func Read(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wavio: %s: %w", path, ErrInvalid)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: reading %s: %w", path, err)
	}

	chans := buf.Format.NumChannels
	if chans < 1 {
		chans = 1
	}
	max := float64(audio.IntMaxSignedValue(int(dec.BitDepth)))
	if max == 0 {
		max = 1
	}
	x := make([]float64, len(buf.Data)/chans)
	for i := range x {
		x[i] = float64(buf.Data[i*chans]) / max
	}
	return x, buf.Format.SampleRate, nil
}
