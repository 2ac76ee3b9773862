package metrics

import "github.com/san-kum/timeflow/internal/timeline"

// Metric accumulates a scalar over a sequence of frames.
type Metric interface {
	Name() string
	Observe(s timeline.Snapshot)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported after a headless run.
func Defaults() []Metric {
	return []Metric{NewMeanRings(), NewPeakRings(), NewWraps(), NewMaxRadius()}
}

// Evaluate resets each metric, feeds it every frame and collects the values.
func Evaluate(frames []timeline.Snapshot, ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, f := range frames {
			m.Observe(f)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
