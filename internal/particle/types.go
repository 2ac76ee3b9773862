package particle

import (
	"math"

	"github.com/san-kum/timeflow/internal/hsb"
)

const (
	MinTimeScale = 0.25
	MaxTimeScale = 4.0
)

// Ring is a fading circular trail left behind by the particle.
type Ring struct {
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Radius float64   `json:"radius" jsonschema:"minimum=0"`
	Alpha  float64   `json:"alpha" jsonschema:"minimum=0,maximum=255"`
	Color  hsb.Color `json:"color"`
}

// NewRing returns a fresh ring: zero radius, fully opaque.
func NewRing(x, y float64, c hsb.Color) Ring {
	return Ring{X: x, Y: y, Radius: 0, Alpha: hsb.MaxAlpha, Color: c.Normalize()}
}

// Advance grows and fades the ring by dt ticks using the default rates.
func (r *Ring) Advance(dt float64) {
	r.advance(dt, DefaultParams().RingGrowth, DefaultParams().RingFade)
}

func (r *Ring) advance(dt, growth, fade float64) {
	r.Radius += growth * dt
	r.Alpha = math.Max(0, r.Alpha-fade*dt)
}

func (r Ring) Expired() bool { return r.Alpha <= 0 }

// State is the single simulated particle.
type State struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Speed float64   `json:"speed"`
	Color hsb.Color `json:"color"`
}

// Rainbow is the hue-cycling color mode.
type Rainbow struct {
	Hue     float64 `json:"hue"`
	Enabled bool    `json:"enabled"`
}

// Viewport is the size of the area the particle travels through.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Params holds the tunable constants of the animation.
type Params struct {
	Speed             float64 `json:"speed" yaml:"speed"`
	StartX            float64 `json:"startX" yaml:"start_x"`
	Size              float64 `json:"size" yaml:"size"`
	PathFrequency     float64 `json:"pathFrequency" yaml:"path_frequency"`
	PathAmplitude     float64 `json:"pathAmplitude" yaml:"path_amplitude"`
	WrapMargin        float64 `json:"wrapMargin" yaml:"wrap_margin"`
	RingGrowth        float64 `json:"ringGrowth" yaml:"ring_growth"`
	RingFade          float64 `json:"ringFade" yaml:"ring_fade"`
	RainbowSaturation float64 `json:"rainbowSaturation" yaml:"rainbow_saturation"`
	RainbowBrightness float64 `json:"rainbowBrightness" yaml:"rainbow_brightness"`
}

func DefaultParams() Params {
	return Params{
		Speed:             2,
		StartX:            0,
		Size:              10,
		PathFrequency:     0.05,
		PathAmplitude:     50,
		WrapMargin:        50,
		RingGrowth:        3,
		RingFade:          2,
		RainbowSaturation: 80,
		RainbowBrightness: 100,
	}
}

// PathY is the y coordinate of the sinusoidal path at x.
func (p Params) PathY(x float64, vp Viewport) float64 {
	return vp.Height/2 + math.Sin(x*p.PathFrequency)*p.PathAmplitude
}

// RainbowColor is the particle color for a rainbow hue.
func (p Params) RainbowColor(hue float64) hsb.Color {
	return hsb.New(hue, p.RainbowSaturation, p.RainbowBrightness, hsb.MaxAlpha)
}

// Initial is the particle at the start of a session.
func Initial(prm Params, vp Viewport) State {
	return State{
		X:     prm.StartX,
		Y:     vp.Height / 2,
		Speed: prm.Speed,
		Color: hsb.Default,
	}
}

// CloneRings returns a copy of rings that shares no backing array.
func CloneRings(rings []Ring) []Ring {
	out := make([]Ring, len(rings))
	copy(out, rings)
	return out
}

// ClampTimeScale bounds a multiplier to [MinTimeScale, MaxTimeScale].
func ClampTimeScale(t float64) float64 {
	if math.IsNaN(t) {
		return MinTimeScale
	}
	return math.Min(MaxTimeScale, math.Max(MinTimeScale, t))
}
