package particle

import (
	"encoding/json"
	"testing"

	"github.com/san-kum/timeflow/internal/hsb"
)

func TestRingRoundTrip(t *testing.T) {
	rings := []Ring{
		NewRing(0, 0, hsb.Default),
		{X: 12.5, Y: -3.25, Radius: 42, Alpha: 17.5, Color: hsb.New(300, 80, 100, 255)},
		{X: 1e6, Y: 1e-6, Radius: 0, Alpha: 0, Color: hsb.New(0, 0, 0, 0)},
	}

	for _, r := range rings {
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got := DecodeRing(data)
		if got != r {
			t.Errorf("round trip: got %+v, want %+v", got, r)
		}
	}
}

func TestDecodeRingDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ring
	}{
		{"empty object", `{}`, Ring{Alpha: 255, Color: hsb.Default}},
		{"missing color", `{"x":1,"y":2,"radius":3,"alpha":4}`, Ring{X: 1, Y: 2, Radius: 3, Alpha: 4, Color: hsb.Default}},
		{"partial color", `{"alpha":9,"color":{"h":90}}`, Ring{Alpha: 9, Color: hsb.Color{H: 90, S: 0, B: 100, A: 255}}},
		{"out of range", `{"radius":-5,"alpha":900}`, Ring{Radius: 0, Alpha: 255, Color: hsb.Default}},
		{"garbage", `not json`, Ring{Alpha: 255, Color: hsb.Default}},
		{"null color", `{"color":null}`, Ring{Alpha: 255, Color: hsb.Default}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeRing([]byte(tt.in)); got != tt.want {
				t.Errorf("DecodeRing(%s) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRingReportsSyntaxErrors(t *testing.T) {
	r, err := ParseRing([]byte(`{"x":`))
	if err == nil {
		t.Error("expected error for truncated input")
	}
	if r.Alpha != 255 {
		t.Errorf("expected default ring, got %+v", r)
	}
}

func TestStateDecodeDefaults(t *testing.T) {
	var s State
	if err := json.Unmarshal([]byte(`{"x": 5}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := State{X: 5, Y: 0, Speed: 2, Color: hsb.Default}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestParseKeepsGoodFields(t *testing.T) {
	r, err := ParseRing([]byte(`{"x":"oops","y":7,"radius":3,"color":{"h":"red","s":40}}`))
	if err == nil {
		t.Error("mistyped fields should be reported")
	}
	want := Ring{X: 0, Y: 7, Radius: 3, Alpha: 255, Color: hsb.Color{H: 0, S: 40, B: 100, A: 255}}
	if r != want {
		t.Errorf("ring = %+v, want %+v", r, want)
	}

	var s State
	if err := json.Unmarshal([]byte(`{"x":"oops","y":7,"speed":4}`), &s); err != nil {
		t.Fatalf("unmarshal should not fail: %v", err)
	}
	if s.X != 0 || s.Y != 7 || s.Speed != 4 {
		t.Errorf("state = %+v", s)
	}

	if _, err := ParseState([]byte(`{"speed":true}`)); err == nil {
		t.Error("ParseState should report the mistyped speed")
	}
}
