package playback

import "testing"

func TestQuantizeTimeScale(t *testing.T) {
	tests := []struct {
		in    float64
		want  float64
		label string
	}{
		{1, 1, "1x"},
		{0.37, 0.25, "0.25x"},
		{0.38, 0.5, "0.5x"},
		{1.5, 1.5, "1.5x"},
		{1.1, 1, "1x"},
		{2.75, 2.75, "2.75x"},
		{5, 4, "4x"},
		{0, 0.25, "0.25x"},
		{-3, 0.25, "0.25x"},
	}

	for _, tt := range tests {
		got := QuantizeTimeScale(tt.in)
		if got != tt.want {
			t.Errorf("QuantizeTimeScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if label := TimeScaleLabel(got); label != tt.label {
			t.Errorf("TimeScaleLabel(%v) = %q, want %q", got, label, tt.label)
		}
	}
}

func TestTimeScaleStepping(t *testing.T) {
	s := New(DefaultSettings())

	for i := 0; i < 20; i++ {
		s.Handle(TimeScaleUp())
	}
	if s.TimeScale() != 4 {
		t.Errorf("after stepping up: got %v, want 4", s.TimeScale())
	}

	for i := 0; i < 20; i++ {
		s.Handle(TimeScaleDown())
	}
	if s.TimeScale() != 0.25 {
		t.Errorf("after stepping down: got %v, want 0.25", s.TimeScale())
	}
}
