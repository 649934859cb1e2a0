package wavesynth

// bandlimit renders the mip levels of prototype into levels.  Level k keeps
// only the bins below (TableLength/2)>>k, so each level has half the
// bandwidth of the one before it.
func bandlimit(s *spectrum, levels *[NumTables]cycle, prototype []float64) {
	for k := range levels {
		c := &levels[k]
		s.lowpass(c[:TableLength], prototype, TableLength/2>>k)
		copy(c[TableLength:], c[:GuardSamples])
	}
}
