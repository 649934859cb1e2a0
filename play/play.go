// Package play sends a Voice to the default audio output through PortAudio.
package play

import (
	"fmt"
	"log"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/gordonklaus/wavesynth"
)

// A Voice produces one sample per call.  Done reports that it has finished.
type Voice interface {
	Sample() float64
	Done() bool
}

const framesPerBuffer = 1024

var (
	initOnce sync.Once
	initErr  error
)

func initialize() error {
	initOnce.Do(func() { initErr = portaudio.Initialize() })
	return initErr
}

// Play plays v until it is done.
func Play(v Voice, p wavesynth.Params) error {
	c, err := PlayAsync(v, p)
	if err != nil {
		return err
	}
	<-c.Done
	return nil
}

// PlayAsync starts playing v and returns at once.  The voice is inited with
// p and then only touched from the audio callback.
func PlayAsync(v Voice, p wavesynth.Params) (*Control, error) {
	if err := initialize(); err != nil {
		return nil, fmt.Errorf("play: initializing portaudio: %w", err)
	}
	wavesynth.Init(v, p)

	c := &Control{stop: make(chan struct{}, 1), Done: make(chan struct{})}
	finished := make(chan struct{}, 1)
	callback := func(out []float32) {
		for i := range out {
			out[i] = float32(wavesynth.Saturate(v.Sample()))
		}
		if v.Done() {
			select {
			case finished <- struct{}{}:
			default:
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, p.SampleRate, framesPerBuffer, callback)
	if err != nil {
		return nil, fmt.Errorf("play: opening stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, fmt.Errorf("play: starting stream: %w", err)
	}

	go func() {
		select {
		case <-c.stop:
		case <-finished:
		}
		if err := stream.Stop(); err != nil {
			log.Println("play:", err)
		}
		if err := stream.Close(); err != nil {
			log.Println("play:", err)
		}
		close(c.Done)
	}()
	return c, nil
}

// Terminate releases PortAudio.  Nothing may be playing.
func Terminate() error {
	return portaudio.Terminate()
}

// Control stops a voice started by PlayAsync.  Done is closed once the
// stream is closed.
type Control struct {
	stop chan struct{}
	Done chan struct{}
}

func (c *Control) Stop() {
	select {
	case c.stop <- struct{}{}:
	default:
	}
}
