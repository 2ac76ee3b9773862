package hsb

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/timeflow/internal/wire"
)

const (
	MaxHue        = 360.0
	MaxSaturation = 100.0
	MaxBrightness = 100.0
	MaxAlpha      = 255.0
)

// Color is a color in HSB space with alpha, using the 360/100/100/255 ranges.
type Color struct {
	H float64 `json:"h" jsonschema:"minimum=0,maximum=360"`
	S float64 `json:"s" jsonschema:"minimum=0,maximum=100"`
	B float64 `json:"b" jsonschema:"minimum=0,maximum=100"`
	A float64 `json:"a" jsonschema:"minimum=0,maximum=255"`
}

// Default is opaque white.
var Default = Color{H: 0, S: 0, B: MaxBrightness, A: MaxAlpha}

// Patch is a partial color. Nil channels take the value of Default.
type Patch struct {
	H *float64 `json:"h,omitempty"`
	S *float64 `json:"s,omitempty"`
	B *float64 `json:"b,omitempty"`
	A *float64 `json:"a,omitempty"`
}

// New returns a normalized color.
func New(h, s, b, a float64) Color {
	return Color{H: h, S: s, B: b, A: a}.Normalize()
}

// Merge fills every missing channel of p from Default and normalizes the result.
func Merge(p Patch) Color {
	c := Default
	if p.H != nil {
		c.H = *p.H
	}
	if p.S != nil {
		c.S = *p.S
	}
	if p.B != nil {
		c.B = *p.B
	}
	if p.A != nil {
		c.A = *p.A
	}
	return c.Normalize()
}

// PatchOf returns a fully populated patch for c.
func PatchOf(c Color) Patch {
	h, s, b, a := c.H, c.S, c.B, c.A
	return Patch{H: &h, S: &s, B: &b, A: &a}
}

// Normalize wraps hue into [0,360) and clamps the other channels.
// NaN channels fall back to the channel's default.
func (c Color) Normalize() Color {
	return Color{
		H: WrapHue(c.H),
		S: clampChannel(c.S, MaxSaturation, Default.S),
		B: clampChannel(c.B, MaxBrightness, Default.B),
		A: clampChannel(c.A, MaxAlpha, Default.A),
	}
}

// ParsePatch decodes a possibly partial color channel by channel. A channel
// of the wrong type is left unset and reported; the others survive.
func ParsePatch(data []byte) (Patch, error) {
	var p Patch
	f, err := wire.Parse(data)
	errs := wire.Errors{}
	errs.Add(err)

	var cerr error
	p.H, cerr = f.Float("h")
	errs.Add(cerr)
	p.S, cerr = f.Float("s")
	errs.Add(cerr)
	p.B, cerr = f.Float("b")
	errs.Add(cerr)
	p.A, cerr = f.Float("a")
	errs.Add(cerr)
	return p, errs.Err()
}

// UnmarshalJSON decodes a possibly partial color, defaulting missing or
// broken channels. It never fails.
func (c *Color) UnmarshalJSON(data []byte) error {
	p, _ := ParsePatch(data)
	*c = Merge(p)
	return nil
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clampChannel(a, MaxAlpha, Default.A)
	return c
}

// Colorful converts the opaque part of c to RGB.
func (c Color) Colorful() colorful.Color {
	n := c.Normalize()
	return colorful.Hsv(n.H, n.S/MaxSaturation, n.B/MaxBrightness).Clamped()
}

// RGBA returns 8-bit channels, alpha included.
func (c Color) RGBA() (r, g, b, a uint8) {
	r, g, b = c.Colorful().RGB255()
	return r, g, b, uint8(math.Round(c.Normalize().A))
}

// Hex returns the opaque #rrggbb form of c.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Over composites c over an opaque background using c's alpha.
func (c Color) Over(bg Color) colorful.Color {
	t := c.Normalize().A / MaxAlpha
	return bg.Colorful().BlendRgb(c.Colorful(), t).Clamped()
}

// Opacity is alpha scaled to [0,1].
func (c Color) Opacity() float64 {
	return c.Normalize().A / MaxAlpha
}

// WrapHue maps h into [0,360). Non-finite hues become the default hue.
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return Default.H
	}
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	if h >= MaxHue {
		h = 0
	}
	return h
}

func clampChannel(v, max, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Min(max, math.Max(0, v))
}
