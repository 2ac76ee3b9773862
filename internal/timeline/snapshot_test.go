package timeline

import (
	"encoding/json"
	"testing"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/particle"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := Snapshot{
		Particle: particle.State{X: 3, Y: 4, Speed: 2, Color: hsb.New(10, 80, 100, 255)},
		Rings: []particle.Ring{
			{X: 1, Y: 2, Radius: 6, Alpha: 251, Color: hsb.New(8, 80, 100, 255)},
			{X: 3, Y: 4, Radius: 3, Alpha: 253, Color: hsb.New(10, 80, 100, 255)},
		},
		RainbowHue:     10,
		RainbowEnabled: true,
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := DecodeSnapshot(data)
	if !got.Equal(s) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, s)
	}
}

func TestDecodeSnapshotDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", `{}`},
		{"garbage", `][`},
		{"null particle", `{"particle": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DecodeSnapshot([]byte(tt.in))
			if s.Particle.Speed != particle.DefaultParams().Speed {
				t.Errorf("speed = %f", s.Particle.Speed)
			}
			if s.Particle.Color != hsb.Default {
				t.Errorf("color = %+v", s.Particle.Color)
			}
			if s.Rings == nil || len(s.Rings) != 0 {
				t.Errorf("rings = %v", s.Rings)
			}
			if s.RainbowEnabled || s.RainbowHue != 0 {
				t.Error("rainbow should default off")
			}
		})
	}
}

func TestDecodeSnapshotPartialRing(t *testing.T) {
	s := DecodeSnapshot([]byte(`{"rings":[{"x":5,"color":{"h":20}}]}`))
	if len(s.Rings) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(s.Rings))
	}
	want := particle.Ring{X: 5, Alpha: 255, Color: hsb.Color{H: 20, S: 0, B: 100, A: 255}}
	if s.Rings[0] != want {
		t.Errorf("ring = %+v, want %+v", s.Rings[0], want)
	}
}

func TestParseSnapshotKeepsGoodFields(t *testing.T) {
	in := `{
		"particle": {"x": "oops", "y": 12, "speed": 3},
		"rings": [{"x": 1, "radius": 4}, {"radius": "big", "y": 2}],
		"rainbowHue": 370,
		"rainbowModeEnabled": "yes"
	}`

	s, err := ParseSnapshot([]byte(in))
	if err == nil {
		t.Error("mistyped fields should be reported")
	}
	if s.Particle.X != 0 || s.Particle.Y != 12 || s.Particle.Speed != 3 {
		t.Errorf("particle = %+v", s.Particle)
	}
	if len(s.Rings) != 2 || s.Rings[0].X != 1 || s.Rings[0].Radius != 4 || s.Rings[1].Y != 2 || s.Rings[1].Radius != 0 {
		t.Errorf("rings = %+v", s.Rings)
	}
	if s.RainbowHue != 10 {
		t.Errorf("hue = %f, want 10", s.RainbowHue)
	}
	if s.RainbowEnabled {
		t.Error("a mistyped flag should default off")
	}

	var u Snapshot
	if err := json.Unmarshal([]byte(in), &u); err != nil {
		t.Fatalf("unmarshal should not fail: %v", err)
	}
	if !u.Equal(s) {
		t.Errorf("unmarshal = %+v, want %+v", u, s)
	}
}

func TestParseSnapshotHue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`{"rainbowHue": 370}`, 10},
		{`{"rainbowHue": -30}`, 330},
		{`{"rainbowHue": 360}`, 0},
		{`{"rainbowHue": 1e400}`, 0},
	}

	for _, tt := range tests {
		s := DecodeSnapshot([]byte(tt.in))
		if s.RainbowHue != tt.want {
			t.Errorf("DecodeSnapshot(%s) hue = %f, want %f", tt.in, s.RainbowHue, tt.want)
		}
	}
}
