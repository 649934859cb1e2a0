package wavesynth

import (
	"github.com/ktye/fft"
)

// A Transformer is an in-place complex FFT of fixed power-of-two length.
// fft.FFT from github.com/ktye/fft satisfies it.
type Transformer interface {
	Transform([]complex128) []complex128
	Inverse([]complex128) []complex128
}

// spectrum band-limits real signals of one fixed length.
type spectrum struct {
	fft  Transformer
	buf  []complex128
	gain float64
}

func newSpectrum(size int) *spectrum {
	f, err := fft.New(size)
	if err != nil {
		panic(err)
	}
	return newSpectrumWith(&f, size)
}

func newSpectrumWith(f Transformer, size int) *spectrum {
	s := &spectrum{fft: f, buf: make([]complex128, size)}

	// Libraries disagree on where the 1/N goes; measure the round trip once.
	s.buf[0] = 1
	s.buf = s.fft.Transform(s.buf)
	s.buf = s.fft.Inverse(s.buf)
	s.gain = 1 / real(s.buf[0])
	return s
}

// lowpass writes into dst the real signal src with every bin at or above
// cutoff (and its mirror) removed.  A cutoff of 0 leaves silence.
func (s *spectrum) lowpass(dst, src []float64, cutoff int) {
	n := len(s.buf)
	for i := range s.buf {
		s.buf[i] = complex(src[i], 0)
	}
	s.buf = s.fft.Transform(s.buf)
	for h := cutoff; h <= n-cutoff && h < n; h++ {
		s.buf[h] = 0
	}
	s.buf = s.fft.Inverse(s.buf)
	for i := range dst[:n] {
		dst[i] = real(s.buf[i]) * s.gain
	}
}
