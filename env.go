package wavesynth

import "math"

// silent is the level below which a released envelope is done (-80 dB).
const silent = 1e-4

// AttackReleaseEnv fades a rendered note in and out so that it starts and
// stops without a click.  Each stage approaches its target exponentially,
// covering 99% of the distance in the stage's time.
type AttackReleaseEnv struct {
	Params Params

	attack, release envStage
	releasing       bool
	level           float64
}

type envStage struct {
	time float64
	coef float64 // remaining distance is multiplied by coef each sample
}

func (s *envStage) set(t, sampleRate float64) {
	s.time = t
	s.coef = 0
	if n := t * sampleRate; n >= 1 {
		s.coef = math.Pow(.01, 1/n)
	}
}

func NewAttackReleaseEnv(attackTime, releaseTime float64) *AttackReleaseEnv {
	e := &AttackReleaseEnv{}
	e.attack.time = attackTime
	e.release.time = releaseTime
	return e
}

func (e *AttackReleaseEnv) InitAudio(p Params) {
	e.Params = p
	e.SetAttackTime(e.attack.time)
	e.SetReleaseTime(e.release.time)
}

func (e *AttackReleaseEnv) SetAttackTime(t float64)  { e.attack.set(t, e.Params.SampleRate) }
func (e *AttackReleaseEnv) SetReleaseTime(t float64) { e.release.set(t, e.Params.SampleRate) }

func (e *AttackReleaseEnv) Attack()  { e.releasing = false }
func (e *AttackReleaseEnv) Release() { e.releasing = true }

// Sing returns the next gain.
func (e *AttackReleaseEnv) Sing() float64 {
	target, s := 1.0, e.attack
	if e.releasing {
		target, s = 0, e.release
	}
	e.level = target + (e.level-target)*s.coef
	return e.level
}

// Done reports whether a released envelope has become inaudible.
func (e *AttackReleaseEnv) Done() bool {
	return e.releasing && e.level < silent
}
