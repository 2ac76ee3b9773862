package metrics

import "github.com/san-kum/timeflow/internal/timeline"

// Wraps counts how often the particle jumped back to the left edge.
type Wraps struct {
	name  string
	count int
	lastX float64
	seen  bool
}

func NewWraps() *Wraps {
	return &Wraps{name: "wraps"}
}

func (w *Wraps) Name() string { return w.name }

func (w *Wraps) Observe(s timeline.Snapshot) {
	if w.seen && s.Particle.X < w.lastX {
		w.count++
	}
	w.lastX = s.Particle.X
	w.seen = true
}

func (w *Wraps) Value() float64 { return float64(w.count) }

func (w *Wraps) Reset() {
	w.count = 0
	w.lastX = 0
	w.seen = false
}
