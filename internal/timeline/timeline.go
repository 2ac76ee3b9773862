package timeline

import "math"

// Timeline is the recorded history of frames plus a cursor into it.
//
// Frames are never empty once constructed. While the simulation advances
// live the cursor sits on the last frame. Recording from an earlier cursor
// discards everything after it first, so history is a single line that
// gets overwritten rather than a tree.
//
// A Timeline is not safe for concurrent use.
type Timeline struct {
	frames    []Snapshot
	cursor    int
	maxFrames int
}

type Option func(*Timeline)

// WithMaxFrames caps the history length. Zero means unbounded. When the cap
// is hit the oldest frames are evicted.
func WithMaxFrames(n int) Option {
	return func(t *Timeline) {
		if n > 0 {
			t.maxFrames = n
		}
	}
}

func New(initial Snapshot, opts ...Option) *Timeline {
	t := &Timeline{}
	for _, opt := range opts {
		opt(t)
	}
	t.Initialize(initial)
	return t
}

// Initialize drops all history and seeds it with s.
func (t *Timeline) Initialize(s Snapshot) {
	t.frames = []Snapshot{s.Clone()}
	t.cursor = 0
}

// RecordAdvance appends s as the newest frame, first discarding any frames
// after the cursor.
func (t *Timeline) RecordAdvance(s Snapshot) {
	if t.cursor < len(t.frames)-1 {
		for i := t.cursor + 1; i < len(t.frames); i++ {
			t.frames[i] = Snapshot{}
		}
		t.frames = t.frames[:t.cursor+1]
	}
	t.frames = append(t.frames, s.Clone())

	if t.maxFrames > 0 && len(t.frames) > t.maxFrames {
		drop := len(t.frames) - t.maxFrames
		n := copy(t.frames, t.frames[drop:])
		for i := n; i < len(t.frames); i++ {
			t.frames[i] = Snapshot{}
		}
		t.frames = t.frames[:n]
	}

	t.cursor = len(t.frames) - 1
}

// OverwriteCurrent replaces the frame under the cursor in place.
func (t *Timeline) OverwriteCurrent(s Snapshot) {
	t.frames[t.cursor] = s.Clone()
}

// Seek moves the cursor to the nearest frame to index and returns a copy of
// it. Out-of-range and NaN indices are clamped.
func (t *Timeline) Seek(index float64) Snapshot {
	t.cursor = t.clamp(index)
	return t.frames[t.cursor].Clone()
}

// SeekIndex is Seek for integer indices.
func (t *Timeline) SeekIndex(i int) Snapshot {
	return t.Seek(float64(i))
}

func (t *Timeline) clamp(index float64) int {
	if math.IsNaN(index) {
		return 0
	}
	last := float64(len(t.frames) - 1)
	return int(math.Max(0, math.Min(last, math.Round(index))))
}

func (t *Timeline) CurrentIndex() int { return t.cursor }
func (t *Timeline) FrameCount() int   { return len(t.frames) }
func (t *Timeline) LastIndex() int    { return len(t.frames) - 1 }

// AtEnd reports whether the cursor is on the newest frame.
func (t *Timeline) AtEnd() bool { return t.cursor == len(t.frames)-1 }

// Current returns a copy of the frame under the cursor.
func (t *Timeline) Current() Snapshot {
	return t.frames[t.cursor].Clone()
}

// Frame returns a copy of frame i.
func (t *Timeline) Frame(i int) (Snapshot, bool) {
	if i < 0 || i >= len(t.frames) {
		return Snapshot{}, false
	}
	return t.frames[i].Clone(), true
}

// Frames returns copies of every frame, oldest first.
func (t *Timeline) Frames() []Snapshot {
	out := make([]Snapshot, len(t.frames))
	for i, f := range t.frames {
		out[i] = f.Clone()
	}
	return out
}

func (t *Timeline) MaxFrames() int { return t.maxFrames }
