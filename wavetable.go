package wavesynth

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

const (
	// TableLength is the number of samples in one cycle.  It must be a power
	// of two.
	TableLength = 512

	// NumTables is the number of mip levels.  Level k keeps the harmonics
	// below (TableLength/2)>>k.
	NumTables = 12

	// GuardSamples copies of a table's first samples follow its last one, so
	// that interpolation never has to wrap.
	GuardSamples = 4
)

var ErrLength = errors.New("waveform length does not match table length")

// A Table is the read side of a mip-mapped wavetable as seen by an
// oscillator.
type Table interface {
	TableLength() int
	NumLevels() int
	Lookup(i int, frac float64, level int) float64
}

type cycle [TableLength + GuardSamples]float64

type mipMap struct {
	version uint64
	levels  [NumTables]cycle
}

// A WaveTable holds a prototype cycle and its band-limited mip levels.
//
// The setters regenerate every level and are meant to be called at control
// rate.  They may run concurrently with Lookup: each regeneration is
// published as a new snapshot, so a lookup sees either the old tables or the
// new ones, never a mixture.  A WaveTable may be shared by any number of
// oscillators; they all see a change from their next lookup on.
type WaveTable struct {
	mu        sync.Mutex
	waveform  Waveform
	symmetry  float64
	shaper    shaper
	custom    []float64
	prototype cycle
	spectrum  *spectrum

	mip atomic.Pointer[mipMap]
}

func NewWaveTable() *WaveTable {
	return newWaveTable(newSpectrum(TableLength))
}

// NewWaveTableWith is like NewWaveTable but band-limits with f, which must
// transform TableLength points.
func NewWaveTableWith(f Transformer) *WaveTable {
	return newWaveTable(newSpectrumWith(f, TableLength))
}

func newWaveTable(s *spectrum) *WaveTable {
	t := &WaveTable{
		waveform: Sine,
		symmetry: .5,
		shaper: shaper{
			drive:      dBToAmp(36.9),
			offset:     4.37,
			phaseShift: 180,
		},
		spectrum: s,
	}
	t.mu.Lock()
	t.render()
	t.mu.Unlock()
	return t
}

func (t *WaveTable) SetWaveform(w Waveform) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if w < 0 || w >= numWaveforms || w == Custom && t.custom == nil {
		w = Silence
	}
	t.waveform = w
	t.render()
}

func (t *WaveTable) Waveform() Waveform {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.waveform
}

// ImportWaveform makes x, one cycle of exactly TableLength samples, the
// prototype.  Cycles of any other length are rejected with ErrLength and
// leave t unchanged; they are not resampled.
func (t *WaveTable) ImportWaveform(x []float64) error {
	if len(x) != TableLength {
		return fmt.Errorf("wavesynth: importing %d samples: %w", len(x), ErrLength)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.custom = append(t.custom[:0], x...)
	t.waveform = Custom
	t.render()
	return nil
}

// SetSymmetry sets the time split between the first and second half-wave,
// clamped to [0, 1].  For Square this is the pulse width.  Triangle, Square
// and Saw use it.
func (t *WaveTable) SetSymmetry(s float64) {
	if math.IsNaN(s) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.symmetry = math.Min(1, math.Max(0, s))
	t.render()
}

func (t *WaveTable) Symmetry() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.symmetry
}

// SetShaperDrive sets the drive, in dB, of the tanh shaper that makes the
// Square303 wave.
func (t *WaveTable) SetShaperDrive(dB float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shaper.drive = dBToAmp(dB)
	t.render()
}

func (t *WaveTable) ShaperDrive() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ampToDB(t.shaper.drive)
}

func (t *WaveTable) SetShaperOffset(offset float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shaper.offset = offset
	t.render()
}

func (t *WaveTable) ShaperOffset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shaper.offset
}

// SetSquarePhaseShift sets the rotation, in degrees, of the Square303 wave
// relative to Saw303.
func (t *WaveTable) SetSquarePhaseShift(degrees float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shaper.phaseShift = degrees
	t.render()
}

func (t *WaveTable) SquarePhaseShift() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shaper.phaseShift
}

// render rebuilds the prototype and all levels.  t.mu must be held.
func (t *WaveTable) render() {
	x := t.prototype[:TableLength]
	if t.waveform == Custom {
		copy(x, t.custom)
	} else {
		fill(x, t.waveform, t.symmetry, t.shaper)
	}
	removeDC(x)
	normalize(x)
	if reversed(t.waveform) {
		reverseTime(x)
	}
	copy(t.prototype[TableLength:], x)

	m := &mipMap{}
	if old := t.mip.Load(); old != nil {
		m.version = old.version + 1
	}
	bandlimit(t.spectrum, &m.levels, x)
	t.mip.Store(m)
}

func (t *WaveTable) TableLength() int { return TableLength }
func (t *WaveTable) NumLevels() int   { return NumTables }

// Version counts the regenerations t has gone through.
func (t *WaveTable) Version() uint64 { return t.mip.Load().version }

// Lookup returns the value of the given level between samples i and i+1,
// linearly interpolated by frac in [0, 1].  Levels outside the valid range
// are clamped and i wraps around the cycle.
func (t *WaveTable) Lookup(i int, frac float64, level int) float64 {
	return lookup(&t.mip.Load().levels, i, frac, level)
}

// LookupPhase is Lookup with the sample position given as a single phase in
// [0, TableLength).
func (t *WaveTable) LookupPhase(phase float64, level int) float64 {
	i, frac := splitPhase(phase)
	return t.Lookup(i, frac, level)
}

// Prototype returns a copy of the full-bandwidth cycle.
func (t *WaveTable) Prototype() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]float64(nil), t.prototype[:TableLength]...)
}

// Level returns a copy of one band-limited cycle, without guard samples.
func (t *WaveTable) Level(level int) []float64 {
	c := &t.mip.Load().levels[clampLevel(level)]
	return append([]float64(nil), c[:TableLength]...)
}

// CrestFactor returns the peak to RMS ratio of the prototype, or 0 if it is
// silent.
func (t *WaveTable) CrestFactor() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return crestFactor(t.prototype[:TableLength])
}

func dBToAmp(dB float64) float64  { return math.Pow(10, dB/20) }
func ampToDB(amp float64) float64 { return 20 * math.Log10(amp) }
