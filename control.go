package wavesynth

import "sort"

// A Control is a piecewise-linear automation curve through a list of
// points, sampled once per output sample.  It starts at the value 0 at time
// 0; a point whose time equals its predecessor's makes a jump.
type Control struct {
	points  []ControlPoint
	periods []controlPeriod
	x       float64
}

// A ControlPoint is a Value reached at Time seconds.
type ControlPoint struct {
	Time, Value float64
}

// NewControl returns a Control through points, which are sorted by time.
func NewControl(points ...ControlPoint) *Control {
	points = append([]ControlPoint(nil), points...)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time < points[j].Time })
	return &Control{points: points}
}

// ConstControl returns a Control that holds x.
func ConstControl(x float64) *Control {
	return NewControl(ControlPoint{0, x})
}

func (c *Control) InitAudio(p Params) {
	c.periods = make([]controlPeriod, len(c.points))
	c.x = 0
	prev := ControlPoint{}
	for i, pt := range c.points {
		dn := (pt.Time - prev.Time) * p.SampleRate
		dx := 0.0
		if dn >= 1 {
			dx = (pt.Value - prev.Value) / dn
		}
		c.periods[i] = controlPeriod{int(dn), dx, pt.Value}
		prev = pt
	}
}

func (c *Control) Sing() float64 {
	for len(c.periods) > 0 {
		p := &c.periods[0]
		if p.n > 0 {
			p.n--
			c.x += p.dx
			break
		}
		c.x = p.value // lands exactly on each point, and makes zero-length periods jumps
		c.periods = c.periods[1:]
	}
	return c.x
}

// Value is the value last returned by Sing.
func (c *Control) Value() float64 { return c.x }

func (c *Control) Done() bool {
	return len(c.periods) == 0
}

type controlPeriod struct {
	n     int
	dx    float64
	value float64
}
