package timeline

// Series are per-frame traces of a timeline, oldest first.
type Series struct {
	ParticleX []float64
	ParticleY []float64
	RingCount []float64
	Hue       []float64
}

func (t *Timeline) Series() Series {
	return t.SeriesRange(0, len(t.frames))
}

// SeriesRange is Series over frames [from, to), clamped to the timeline.
func (t *Timeline) SeriesRange(from, to int) Series {
	from = max(from, 0)
	to = min(to, len(t.frames))
	n := max(to-from, 0)
	s := Series{
		ParticleX: make([]float64, n),
		ParticleY: make([]float64, n),
		RingCount: make([]float64, n),
		Hue:       make([]float64, n),
	}
	for i := 0; i < n; i++ {
		f := t.frames[from+i]
		s.ParticleX[i] = f.Particle.X
		s.ParticleY[i] = f.Particle.Y
		s.RingCount[i] = float64(len(f.Rings))
		s.Hue[i] = f.RainbowHue
	}
	return s
}
