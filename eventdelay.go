package wavesynth

import "sort"

// EventDelay runs callbacks at sample offsets counted by Step.  A rendering
// loop uses it to apply control-rate changes, such as regenerating a
// WaveTable, between two samples rather than during one.
type EventDelay struct {
	Params Params

	now   int
	queue []scheduledEvent // sorted by at
}

type scheduledEvent struct {
	at int
	f  func()
}

// Delay schedules f to run t seconds from now.  Events due at the same step
// run in the order they were scheduled.
func (d *EventDelay) Delay(t float64, f func()) {
	if d.Params.SampleRate == 0 {
		panic("EventDelay.Delay called before InitAudio")
	}
	d.DelaySamples(int(t*d.Params.SampleRate), f)
}

// DelaySamples schedules f to run on the n'th Step from now.  Events for
// n <= 1 run on the next Step.
func (d *EventDelay) DelaySamples(n int, f func()) {
	if n < 1 {
		n = 1
	}
	at := d.now + n
	i := sort.Search(len(d.queue), func(i int) bool { return d.queue[i].at > at })
	d.queue = append(d.queue, scheduledEvent{})
	copy(d.queue[i+1:], d.queue[i:])
	d.queue[i] = scheduledEvent{at, f}
}

// Step advances time by one sample and runs the events that fall due.  An
// event may schedule further events.
func (d *EventDelay) Step() {
	if len(d.queue) == 0 {
		// Offsets are relative, so the clock may stand still while idle.
		return
	}
	d.now++
	for len(d.queue) > 0 && d.queue[0].at <= d.now {
		f := d.queue[0].f
		d.queue = d.queue[1:]
		f()
	}
}

// Pending is the number of events that have not run yet.
func (d *EventDelay) Pending() int { return len(d.queue) }
