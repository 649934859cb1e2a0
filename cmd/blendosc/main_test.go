package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gordonklaus/wavesynth"
)

func newPatch() *wavesynth.Patch {
	p := &wavesynth.Patch{Osc: wavesynth.NewBlendOscillator(), Duration: 1}
	wavesynth.Init(p, wavesynth.Params{SampleRate: 1000})
	return p
}

func TestScheduleSwitchOffline(t *testing.T) {
	p := newPatch()
	switched := false
	scheduleSwitch(p, .01, false, func() { switched = true })
	require.Equal(t, 1, p.Events.Pending())

	p.Render(make([]float64, 9))
	assert.False(t, switched)
	p.Sample()
	assert.True(t, switched)
}

func TestScheduleSwitchRealtimeStaysOffTheAudioPath(t *testing.T) {
	p := newPatch()
	switched := make(chan struct{})
	scheduleSwitch(p, .001, true, func() { close(switched) })
	assert.Zero(t, p.Events.Pending())

	select {
	case <-switched:
	case <-time.After(5 * time.Second):
		t.Fatal("switch never ran")
	}
}
