package timeline

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/particle"
)

func snap(i int) Snapshot {
	x := float64(i)
	return Snapshot{
		Particle: particle.State{X: x, Y: x * 2, Speed: 2, Color: hsb.Default},
		Rings:    []particle.Ring{particle.NewRing(x, x, hsb.Default)},
	}
}

func filled(n int) *Timeline {
	tl := New(snap(0))
	for i := 1; i < n; i++ {
		tl.RecordAdvance(snap(i))
	}
	return tl
}

func TestInitialize(t *testing.T) {
	tl := filled(5)
	tl.Initialize(snap(42))

	if tl.FrameCount() != 1 || tl.CurrentIndex() != 0 {
		t.Fatalf("expected 1 frame at cursor 0, got %d at %d", tl.FrameCount(), tl.CurrentIndex())
	}
	if tl.Current().Particle.X != 42 {
		t.Error("initial frame not seeded")
	}
}

func TestRecordAdvanceAppends(t *testing.T) {
	tl := filled(4)
	if tl.FrameCount() != 4 {
		t.Errorf("expected 4 frames, got %d", tl.FrameCount())
	}
	if tl.CurrentIndex() != 3 || !tl.AtEnd() {
		t.Errorf("expected cursor at end, got %d", tl.CurrentIndex())
	}
}

func TestRecordAdvanceTruncatesBranch(t *testing.T) {
	tl := filled(10)
	tl.SeekIndex(4)

	tl.RecordAdvance(snap(99))

	if tl.FrameCount() != 6 {
		t.Fatalf("expected 6 frames, got %d", tl.FrameCount())
	}
	if tl.CurrentIndex() != 5 {
		t.Errorf("expected cursor 5, got %d", tl.CurrentIndex())
	}
	for i := 0; i <= 4; i++ {
		f, _ := tl.Frame(i)
		if f.Particle.X != float64(i) {
			t.Errorf("frame %d changed: x=%f", i, f.Particle.X)
		}
	}
	last, _ := tl.Frame(5)
	if last.Particle.X != 99 {
		t.Errorf("new frame not appended, x=%f", last.Particle.X)
	}
}

func TestScrubThenBranchScenario(t *testing.T) {
	tl := New(snap(0))
	for i := 1; i <= 3; i++ {
		tl.RecordAdvance(snap(i))
	}

	tl.SeekIndex(1)
	tl.RecordAdvance(snap(7))

	if tl.FrameCount() != 3 || tl.CurrentIndex() != 2 {
		t.Fatalf("expected 3 frames at cursor 2, got %d at %d", tl.FrameCount(), tl.CurrentIndex())
	}
	want := []float64{0, 1, 7}
	for i, x := range want {
		f, _ := tl.Frame(i)
		if f.Particle.X != x {
			t.Errorf("frame %d: x=%f, want %f", i, f.Particle.X, x)
		}
	}
}

func TestOverwriteCurrent(t *testing.T) {
	tl := filled(5)
	tl.SeekIndex(2)

	s := snap(2)
	s.RainbowEnabled = true
	s.Particle.Color = hsb.New(0, 80, 100, 255)
	tl.OverwriteCurrent(s)

	if tl.FrameCount() != 5 || tl.CurrentIndex() != 2 {
		t.Fatalf("length or cursor changed: %d frames at %d", tl.FrameCount(), tl.CurrentIndex())
	}
	f2, _ := tl.Frame(2)
	if !f2.RainbowEnabled || f2.Particle.Color.S != 80 {
		t.Error("frame 2 not overwritten")
	}
	for _, i := range []int{0, 1, 3, 4} {
		f, _ := tl.Frame(i)
		if !f.Equal(snap(i)) {
			t.Errorf("frame %d changed", i)
		}
	}
}

func TestSeekClampsAndRounds(t *testing.T) {
	tl := filled(5)

	tests := []struct {
		in   float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{1.4, 1},
		{1.5, 2},
		{3.6, 4},
		{99, 4},
		{math.Inf(1), 4},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		got := tl.Seek(tt.in)
		if tl.CurrentIndex() != tt.want {
			t.Errorf("Seek(%v): cursor %d, want %d", tt.in, tl.CurrentIndex(), tt.want)
		}
		if got.Particle.X != float64(tt.want) {
			t.Errorf("Seek(%v): returned frame x=%f", tt.in, got.Particle.X)
		}
	}
	if tl.FrameCount() != 5 {
		t.Errorf("seek changed length to %d", tl.FrameCount())
	}
}

func TestSeekIdempotent(t *testing.T) {
	tl := filled(6)

	a := tl.SeekIndex(3)
	b := tl.SeekIndex(3)
	if !a.Equal(b) {
		t.Error("repeated seek returned different frames")
	}

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Error("repeated seek not byte-identical")
	}
}

func TestRecordThenSeekEndIsNoop(t *testing.T) {
	tl := filled(3)
	s := snap(50)
	tl.RecordAdvance(s)

	got := tl.SeekIndex(tl.FrameCount() - 1)
	if !got.Equal(s) {
		t.Error("seek to end did not restore the recorded frame")
	}
	if tl.CurrentIndex() != 3 || tl.FrameCount() != 4 {
		t.Error("seek to end changed the timeline")
	}
}

func TestNoAliasing(t *testing.T) {
	live := snap(1)
	tl := New(live)

	live.Rings[0].Radius = 1000
	if tl.Current().Rings[0].Radius == 1000 {
		t.Error("timeline aliases the snapshot it was given")
	}

	got := tl.Seek(0)
	got.Rings[0].Alpha = -1
	if tl.Current().Rings[0].Alpha == -1 {
		t.Error("seek result aliases stored frame")
	}

	frames := tl.Frames()
	frames[0].Rings[0].X = 77
	if f, _ := tl.Frame(0); f.Rings[0].X == 77 {
		t.Error("Frames result aliases stored frame")
	}
}

func TestMaxFramesEvictsOldest(t *testing.T) {
	tl := New(snap(0), WithMaxFrames(3))
	for i := 1; i <= 5; i++ {
		tl.RecordAdvance(snap(i))
	}

	if tl.FrameCount() != 3 {
		t.Fatalf("expected 3 frames, got %d", tl.FrameCount())
	}
	if tl.CurrentIndex() != 2 {
		t.Errorf("expected cursor 2, got %d", tl.CurrentIndex())
	}
	first, _ := tl.Frame(0)
	if first.Particle.X != 3 {
		t.Errorf("expected oldest kept frame x=3, got %f", first.Particle.X)
	}
}

func TestFrameOutOfRange(t *testing.T) {
	tl := filled(2)
	if _, ok := tl.Frame(-1); ok {
		t.Error("Frame(-1) should fail")
	}
	if _, ok := tl.Frame(2); ok {
		t.Error("Frame(2) should fail")
	}
}

func TestSeries(t *testing.T) {
	tl := filled(4)
	s := tl.Series()
	if len(s.ParticleY) != 4 || s.ParticleY[3] != 6 {
		t.Errorf("unexpected particle y series %v", s.ParticleY)
	}
	if s.RingCount[0] != 1 {
		t.Errorf("unexpected ring count series %v", s.RingCount)
	}
}

func TestSeriesRange(t *testing.T) {
	tl := filled(6)

	s := tl.SeriesRange(2, 4)
	if len(s.ParticleX) != 2 || s.ParticleX[0] != 2 || s.ParticleX[1] != 3 {
		t.Errorf("SeriesRange(2, 4) x = %v", s.ParticleX)
	}
	if s := tl.SeriesRange(-3, 100); len(s.Hue) != 6 {
		t.Errorf("clamped range has %d points", len(s.Hue))
	}
	if s := tl.SeriesRange(5, 2); len(s.RingCount) != 0 {
		t.Errorf("inverted range has %d points", len(s.RingCount))
	}
}
