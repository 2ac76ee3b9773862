package metrics

import "github.com/san-kum/timeflow/internal/timeline"

type MeanRings struct {
	name    string
	total   float64
	samples int
}

func NewMeanRings() *MeanRings {
	return &MeanRings{name: "mean_rings"}
}

func (m *MeanRings) Name() string { return m.name }

func (m *MeanRings) Observe(s timeline.Snapshot) {
	m.total += float64(len(s.Rings))
	m.samples++
}

func (m *MeanRings) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanRings) Reset() {
	m.total = 0
	m.samples = 0
}

type PeakRings struct {
	name string
	peak int
}

func NewPeakRings() *PeakRings {
	return &PeakRings{name: "peak_rings"}
}

func (p *PeakRings) Name() string { return p.name }

func (p *PeakRings) Observe(s timeline.Snapshot) {
	if len(s.Rings) > p.peak {
		p.peak = len(s.Rings)
	}
}

func (p *PeakRings) Value() float64 { return float64(p.peak) }
func (p *PeakRings) Reset()         { p.peak = 0 }

type MaxRadius struct {
	name string
	max  float64
}

func NewMaxRadius() *MaxRadius {
	return &MaxRadius{name: "max_radius"}
}

func (m *MaxRadius) Name() string { return m.name }

func (m *MaxRadius) Observe(s timeline.Snapshot) {
	for _, r := range s.Rings {
		if r.Radius > m.max {
			m.max = r.Radius
		}
	}
}

func (m *MaxRadius) Value() float64 { return m.max }
func (m *MaxRadius) Reset()         { m.max = 0 }
