package wavesynth

import "math"

// shaper tunes the tanh-saturated square that pairs with Saw303.
type shaper struct {
	drive      float64 // linear
	offset     float64
	phaseShift float64 // degrees
}

// fill writes one full-bandwidth cycle of w into x.  Custom is left to the
// caller.
func fill(x []float64, w Waveform, symmetry float64, sh shaper) {
	n := float64(len(x))
	switch w {
	case Sine:
		for i := range x {
			x[i] = math.Sin(2 * math.Pi * float64(i) / n)
		}
	case Triangle:
		fillTriangle(x, symmetry)
	case Square:
		k := int(math.Floor(symmetry*n + .5))
		for i := range x {
			if i < k {
				x[i] = 1
			} else {
				x[i] = -1
			}
		}
	case Saw:
		fillSaw(x, symmetry)
	case Square303:
		fillSquare303(x, sh)
	case Saw303:
		for i := range x {
			x[i] = 2*float64(i)/n - 1
		}
	case Peak:
		zero(x)
		x[0] = 1
	case MoogSaw:
		for i := range x {
			p := float64(i) / n
			if p < .9 {
				x[i] = 2*p - 1
			} else {
				x[i] = -.1 + .9*math.Cos(math.Pi*(p-.9)/.1)
			}
		}
	default:
		zero(x)
	}
}

func fillTriangle(x []float64, s float64) {
	n := float64(len(x))
	for i := range x {
		p := float64(i) / n
		switch {
		case p < s:
			x[i] = -1 + 2*p/s
		default:
			x[i] = 1 - 2*(p-s)/(1-s)
		}
	}
}

func fillSaw(x []float64, s float64) {
	n := float64(len(x))
	for i := range x {
		p := float64(i) / n
		switch {
		case p < s:
			x[i] = p / s
		default:
			x[i] = -1 + (p-s)/(1-s)
		}
	}
}

// fillSquare303 saturates a rising ramp and rotates the result so that its
// edges line up with the falling Saw303 when the two are blended.
func fillSquare303(x []float64, sh shaper) {
	n := len(x)
	shift := int(math.Floor(sh.phaseShift/360*float64(n)+.5)) % n
	if shift < 0 {
		shift += n
	}
	for i := range x {
		ramp := 2*float64(i)/float64(n) - 1
		x[(i+shift)%n] = -math.Tanh(sh.drive*ramp + sh.offset)
	}
}

// reversed reports whether w's canonical orientation is the time reverse of
// the cycle fill produces.
func reversed(w Waveform) bool { return w == Saw303 }

func removeDC(x []float64) {
	mean := 0.0
	for _, x := range x {
		mean += x
	}
	mean /= float64(len(x))
	for i := range x {
		x[i] -= mean
	}
}

func normalize(x []float64) {
	max := 0.0
	for _, x := range x {
		max = math.Max(max, math.Abs(x))
	}
	if max == 0 {
		return
	}
	for i := range x {
		x[i] /= max
	}
}

func reverseTime(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

func zero(x []float64) {
	for i := range x {
		x[i] = 0
	}
}
