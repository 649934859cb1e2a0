package wavesynth

import "math"

// BlendConfig holds the two tuning constants of a BlendOscillator.
type BlendConfig struct {
	// MipMargin is added to the mip level the increment calls for.  Each
	// step halves the highest harmonic played.
	MipMargin int

	// Table2Gain scales the second table's contribution.  The default suits
	// Square303 against Saw303, whose crest factors differ.
	Table2Gain float64
}

var DefaultBlendConfig = BlendConfig{MipMargin: 2, Table2Gain: .5}

const maxFreq = 20000

// A BlendOscillator reads two shared Tables at the same phase and
// cross-fades them.
//
// Sample is the audio-rate call; it never allocates, locks or fails.
// Changing the frequency or sample rate does not touch the increment until
// ComputeIncrement is called.
type BlendOscillator struct {
	Params Params
	Config BlendConfig

	freq       float64
	increment  float64
	blend      float64
	phase      float64
	startPhase float64
	length     float64

	table1, table2 Table
}

func NewBlendOscillator() *BlendOscillator {
	o := &BlendOscillator{
		Params: Params{SampleRate: 44100},
		Config: DefaultBlendConfig,
		freq:   440,
	}
	o.ComputeIncrement()
	return o
}

func (o *BlendOscillator) InitAudio(p Params) {
	o.SetSampleRate(p.SampleRate)
}

// SetSampleRate ignores rates that are not positive.
func (o *BlendOscillator) SetSampleRate(sampleRate float64) {
	if sampleRate > 0 {
		o.Params.SampleRate = sampleRate
	}
}

func (o *BlendOscillator) SampleRate() float64 { return o.Params.SampleRate }

// SetFrequency ignores frequencies outside (0, 20000) Hz.
func (o *BlendOscillator) SetFrequency(freq float64) {
	if freq > 0 && freq < maxFreq {
		o.freq = freq
	}
}

func (o *BlendOscillator) Frequency() float64 { return o.freq }

// SetPulseWidth sets the symmetry of both tables to pw percent.  The tables
// are shared, so every other oscillator reading them changes too.
func (o *BlendOscillator) SetPulseWidth(pw float64) {
	type symmetric interface{ SetSymmetry(float64) }
	for _, t := range [...]Table{o.table1, o.table2} {
		if t, ok := t.(symmetric); ok {
			t.SetSymmetry(pw / 100)
		}
	}
}

// BindTables sets the tables to blend from.  o does not own them.
func (o *BlendOscillator) BindTables(t1, t2 Table) {
	o.table1, o.table2 = t1, t2
	o.length = 0
	if t1 != nil && t1.TableLength() > 0 {
		o.length = float64(t1.TableLength())
	}
}

// SetBlendFactor sets the mix between the tables: 0 plays the first only, 1
// the second only.  Values outside [0, 1] are not clamped.
func (o *BlendOscillator) SetBlendFactor(blend float64) { o.blend = blend }
func (o *BlendOscillator) BlendFactor() float64         { return o.blend }

// ComputeIncrement derives the phase increment from the current frequency
// and sample rate.  Call it after changing either.  Like SetIncrement, it
// keeps the old increment if the new one would be a whole table or more.
func (o *BlendOscillator) ComputeIncrement() {
	if o.Params.SampleRate > 0 {
		o.SetIncrement(o.cycle() * o.freq / o.Params.SampleRate)
	}
}

// SetIncrement sets the phase increment, in table samples per output sample,
// directly.  Increments of a whole table or more are ignored, as is NaN.
func (o *BlendOscillator) SetIncrement(increment float64) {
	if math.Abs(increment) < o.cycle() {
		o.increment = increment
	}
}

func (o *BlendOscillator) Increment() float64 { return o.increment }

// SetStartPhase sets the table index that ResetPhase returns to.
func (o *BlendOscillator) SetStartPhase(index float64) {
	if !math.IsInf(index, 0) && !math.IsNaN(index) {
		o.startPhase = index
	}
}

func (o *BlendOscillator) ResetPhase() { o.SetPhase(0) }

// SetPhase moves the phase to offset table samples past the start phase.
func (o *BlendOscillator) SetPhase(offset float64) {
	if p := o.startPhase + offset; !math.IsInf(p, 0) && !math.IsNaN(p) {
		n := o.cycle()
		o.phase = p - n*math.Floor(p/n)
	}
}

func (o *BlendOscillator) Phase() float64 { return o.phase }

func (o *BlendOscillator) cycle() float64 {
	if o.length == 0 {
		return TableLength
	}
	return o.length
}

// MipLevel is the level Sample reads at the current increment: one level
// per octave of increment above 1, plus Config.MipMargin.  Tables clamp it.
func (o *BlendOscillator) MipLevel() int {
	if o.increment == 0 {
		return 0
	}
	return math.Ilogb(o.increment) + o.Config.MipMargin
}

// Sample returns the next output sample and advances the phase.  It returns
// 0 while either table is unbound.
func (o *BlendOscillator) Sample() float64 {
	if o.table1 == nil || o.table2 == nil {
		return 0
	}
	level := o.MipLevel()

	n := o.cycle()
	for o.phase >= n {
		o.phase -= n
	}
	for o.phase < 0 {
		o.phase += n
	}

	i := int(o.phase)
	frac := o.phase - float64(i)
	out1 := (1 - o.blend) * o.table1.Lookup(i, frac, level)
	out2 := o.blend * o.table2.Lookup(i, frac, level)
	out2 *= o.Config.Table2Gain

	o.phase += o.increment
	return out1 + out2
}

// Process fills out with consecutive samples.
func (o *BlendOscillator) Process(out []float64) {
	for i := range out {
		out[i] = o.Sample()
	}
}
