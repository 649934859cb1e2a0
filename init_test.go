package wavesynth

import (
	"fmt"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	var i audioIniter
	didPanic := false
	func() {
		defer func() {
			if x := recover(); x != nil {
				didPanic = true
			}
		}()
		Init(i, Params{})
	}()
	if !didPanic {
		t.Error("expected panic")
	}
	if i.inited {
		t.Error("expected not inited")
	}

	Init(&i, Params{})
	if !i.inited {
		t.Error("expected inited")
	}
}

func TestInitWalksStructs(t *testing.T) {
	var v struct {
		Osc    *BlendOscillator
		Meters []*AmpMeter
		Events EventDelay
		Unset  *Control
	}
	v.Osc = NewBlendOscillator()
	v.Meters = []*AmpMeter{NewAmpMeter(.1), NewAmpMeter(.2)}
	Init(&v, Params{SampleRate: 1000})

	if v.Osc.SampleRate() != 1000 {
		t.Errorf("oscillator sample rate %g", v.Osc.SampleRate())
	}
	if v.Events.Params.SampleRate != 1000 {
		t.Errorf("event delay sample rate %g", v.Events.Params.SampleRate)
	}
	for i, m := range v.Meters {
		if len(m.buf) != 100*(i+1) {
			t.Errorf("meter %d window %d", i, len(m.buf))
		}
	}
}

func TestInitNamesUnaddressablePath(t *testing.T) {
	v := struct {
		Voices []interface{}
	}{Voices: []interface{}{&audioIniter{}, audioIniter{}}}

	defer func() {
		x := recover()
		if x == nil {
			t.Fatal("expected panic")
		}
		if msg := fmt.Sprint(x); !strings.Contains(msg, ".Voices[1]") {
			t.Errorf("panic does not name the path: %s", msg)
		}
	}()
	Init(v, Params{})
}

func TestInitSkipsNil(t *testing.T) {
	var v struct {
		Voice Initer
		Env   *AttackReleaseEnv
	}
	Init(&v, Params{SampleRate: 1})
	Init(nil, Params{SampleRate: 1})
}

type audioIniter struct {
	inited bool
}

func (i *audioIniter) InitAudio(p Params) { i.inited = true }
