package wavesynth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlRamps(t *testing.T) {
	c := NewControl(ControlPoint{1, 10}, ControlPoint{0, 0})
	Init(c, Params{SampleRate: 10})
	for i := 1; i <= 10; i++ {
		assert.InDelta(t, float64(i), c.Sing(), 1e-9, "sample %d", i)
	}
	assert.False(t, c.Done())
	c.Sing()
	assert.True(t, c.Done())
	assert.Equal(t, 10.0, c.Value())
}

func TestControlJump(t *testing.T) {
	c := NewControl(ControlPoint{0, 5}, ControlPoint{.5, 5}, ControlPoint{.5, -1})
	Init(c, Params{SampleRate: 4})
	assert.Equal(t, 5.0, c.Sing())
	assert.Equal(t, 5.0, c.Sing())
	assert.Equal(t, -1.0, c.Sing())
	assert.True(t, c.Done())
}

func TestConstControl(t *testing.T) {
	c := ConstControl(440)
	Init(c, Params{SampleRate: 44100})
	for i := 0; i < 10; i++ {
		assert.Equal(t, 440.0, c.Sing())
	}
}

func BenchmarkControl(b *testing.B) {
	c := NewControl(ControlPoint{1e9, 1})
	Init(c, Params{SampleRate: 96000})
	for i := 0; i < b.N; i++ {
		c.Sing()
	}
}
