package wavesynth

import "math"

func lookup(levels *[NumTables]cycle, i int, frac float64, level int) float64 {
	c := &levels[clampLevel(level)]
	i &= TableLength - 1
	return (1-frac)*c[i] + frac*c[i+1]
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level >= NumTables {
		return NumTables - 1
	}
	return level
}

// splitPhase wraps phase into [0, TableLength) and splits it into an index
// and the fraction towards the next sample.
func splitPhase(phase float64) (int, float64) {
	if phase < 0 || phase >= TableLength {
		phase -= TableLength * math.Floor(phase/TableLength)
	}
	i := int(phase)
	return i, phase - float64(i)
}
