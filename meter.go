package wavesynth

import "math"

// AmpMeter tracks the RMS and peak amplitude of a signal over a sliding
// window.
type AmpMeter struct {
	windowSize float64
	buf        []float64
	i          int
	sum, peak  float64
}

func NewAmpMeter(windowSize float64) *AmpMeter {
	return &AmpMeter{windowSize: windowSize}
}

func (a *AmpMeter) InitAudio(p Params) {
	a.buf = make([]float64, int(math.Max(1, p.SampleRate*a.windowSize)))
	a.i, a.sum, a.peak = 0, 0, 0
}

func (a *AmpMeter) Add(x float64) {
	a.sum -= a.buf[a.i]
	a.buf[a.i] = x * x
	a.sum += a.buf[a.i]
	a.i = (a.i + 1) % len(a.buf)
	a.peak = math.Max(a.peak, math.Abs(x))
}

func (a *AmpMeter) RMS() float64 {
	return math.Sqrt(math.Max(0, a.sum) / float64(len(a.buf)))
}

// Peak is the largest absolute value seen since InitAudio.
func (a *AmpMeter) Peak() float64 { return a.peak }

func crestFactor(x []float64) float64 {
	a := AmpMeter{buf: make([]float64, len(x))}
	for _, x := range x {
		a.Add(x)
	}
	if rms := a.RMS(); rms > 0 {
		return a.Peak() / rms
	}
	return 0
}
