package wavesynth

import (
	"errors"
	"fmt"
	"strings"
)

// A Waveform selects the rule that fills a WaveTable's prototype cycle.
type Waveform int

const (
	Silence Waveform = iota
	Sine
	Triangle
	Square
	Saw
	Square303
	Saw303
	Peak
	MoogSaw
	Custom

	numWaveforms
)

var ErrUnknownWaveform = errors.New("unknown waveform")

var waveformNames = [...]string{
	Silence:   "silence",
	Sine:      "sine",
	Triangle:  "triangle",
	Square:    "square",
	Saw:       "saw",
	Square303: "square303",
	Saw303:    "saw303",
	Peak:      "peak",
	MoogSaw:   "moogsaw",
	Custom:    "custom",
}

func (w Waveform) String() string {
	if w < 0 || w >= numWaveforms {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform returns the Waveform named s, ignoring case.
func ParseWaveform(s string) (Waveform, error) {
	for w, name := range waveformNames {
		if strings.EqualFold(s, name) {
			return Waveform(w), nil
		}
	}
	return Silence, fmt.Errorf("%w %q", ErrUnknownWaveform, s)
}

// Waveforms returns every built-in kind, in order.  Custom is not included.
func Waveforms() []Waveform {
	w := make([]Waveform, 0, numWaveforms-1)
	for i := Silence; i < Custom; i++ {
		w = append(w, i)
	}
	return w
}
