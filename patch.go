package wavesynth

// A Patch plays one BlendOscillator for a fixed time under automation.
//
// Freq (in Hz) and Blend are optional Controls sampled once per output
// sample; a nil Control leaves the oscillator's setting alone.  Env, if set,
// is released after Duration seconds and the patch is done when it has faded
// out.  Events run before each sample, which is where table changes belong.
type Patch struct {
	Osc      *BlendOscillator
	Freq     *Control
	Blend    *Control
	Env      *AttackReleaseEnv
	Events   EventDelay
	Duration float64

	n, releaseAt int
}

func (p *Patch) InitAudio(params Params) {
	p.Events.Params = params
	p.Osc.InitAudio(params)
	for _, c := range [...]*Control{p.Freq, p.Blend} {
		if c != nil {
			c.InitAudio(params)
		}
	}
	if p.Env != nil {
		p.Env.InitAudio(params)
		p.Env.Attack()
	}
	p.n = 0
	p.releaseAt = int(p.Duration * params.SampleRate)
	p.Osc.ComputeIncrement()
}

func (p *Patch) Sample() float64 {
	p.Events.Step()
	if p.Freq != nil {
		if f := p.Freq.Sing(); f != p.Osc.Frequency() {
			p.Osc.SetFrequency(f)
			p.Osc.ComputeIncrement()
		}
	}
	if p.Blend != nil {
		p.Osc.SetBlendFactor(p.Blend.Sing())
	}
	x := p.Osc.Sample()
	if p.n == p.releaseAt && p.releaseAt > 0 && p.Env != nil {
		p.Env.Release()
	}
	p.n++
	if p.Env != nil {
		x *= p.Env.Sing()
	}
	return x
}

// Render fills out with consecutive samples.
func (p *Patch) Render(out []float64) {
	for i := range out {
		out[i] = p.Sample()
	}
}

func (p *Patch) Done() bool {
	if p.Env != nil {
		return p.Env.Done()
	}
	return p.releaseAt > 0 && p.n >= p.releaseAt
}
