package hsb

import (
	"encoding/json"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		want  Color
	}{
		{"empty", Patch{}, Default},
		{"hue only", Patch{H: ptr(120)}, Color{H: 120, S: 0, B: 100, A: 255}},
		{"full", Patch{H: ptr(10), S: ptr(80), B: ptr(50), A: ptr(128)}, Color{H: 10, S: 80, B: 50, A: 128}},
		{"hue wraps", Patch{H: ptr(370)}, Color{H: 10, S: 0, B: 100, A: 255}},
		{"negative hue", Patch{H: ptr(-90)}, Color{H: 270, S: 0, B: 100, A: 255}},
		{"clamped", Patch{S: ptr(150), B: ptr(-4), A: ptr(999)}, Color{H: 0, S: 100, B: 0, A: 255}},
		{"nan falls back", Patch{H: ptr(math.NaN()), A: ptr(math.NaN())}, Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.patch); got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatchOfRoundTrip(t *testing.T) {
	c := New(200, 80, 100, 40)
	if got := Merge(PatchOf(c)); got != c {
		t.Errorf("Merge(PatchOf(c)) = %+v, want %+v", got, c)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Default, "#ffffff"},
		{New(0, 100, 100, 255), "#ff0000"},
		{New(120, 100, 100, 255), "#00ff00"},
		{New(0, 0, 0, 255), "#000000"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestOver(t *testing.T) {
	bg := New(0, 0, 0, 255)
	fg := New(0, 0, 100, 0)
	if got := fg.Over(bg).Hex(); got != "#000000" {
		t.Errorf("transparent over black = %s, want #000000", got)
	}

	fg = fg.WithAlpha(255)
	if got := fg.Over(bg).Hex(); got != "#ffffff" {
		t.Errorf("opaque white over black = %s, want #ffffff", got)
	}
}

func TestRGBA(t *testing.T) {
	_, _, _, a := New(0, 0, 100, 127.6).RGBA()
	if a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
}

func TestUnmarshalPartial(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{`{}`, Default},
		{`null`, Default},
		{`{"h": 45, "s": 80}`, Color{H: 45, S: 80, B: 100, A: 255}},
		{`{"a": 12}`, Color{H: 0, S: 0, B: 100, A: 12}},
	}

	for _, tt := range tests {
		var c Color
		if err := json.Unmarshal([]byte(tt.in), &c); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if c != tt.want {
			t.Errorf("unmarshal %s = %+v, want %+v", tt.in, c, tt.want)
		}
	}
}

func TestParsePatchKeepsGoodChannels(t *testing.T) {
	p, err := ParsePatch([]byte(`{"h":"red","s":40,"b":70}`))
	if err == nil {
		t.Error("expected an error for the string hue")
	}
	if got, want := Merge(p), (Color{H: 0, S: 40, B: 70, A: 255}); got != want {
		t.Errorf("merged = %+v, want %+v", got, want)
	}

	var c Color
	if err := json.Unmarshal([]byte(`{"h":"red","s":40}`), &c); err != nil {
		t.Errorf("unmarshal should not fail: %v", err)
	}
	if c.S != 40 {
		t.Errorf("s = %v, want 40", c.S)
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{370, 10},
		{-30, 330},
		{360, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := WrapHue(tt.in); got != tt.want {
			t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
