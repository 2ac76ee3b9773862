package particle

import (
	"encoding/json"
	"math"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/wire"
)

type ringWire struct {
	X      *float64  `json:"x"`
	Y      *float64  `json:"y"`
	Radius *float64  `json:"radius"`
	Alpha  *float64  `json:"alpha"`
	Color  hsb.Patch `json:"color"`
}

func (r Ring) MarshalJSON() ([]byte, error) {
	return json.Marshal(ringWire{
		X:      &r.X,
		Y:      &r.Y,
		Radius: &r.Radius,
		Alpha:  &r.Alpha,
		Color:  hsb.PatchOf(r.Color),
	})
}

// ParseRing decodes data into a ring field by field. Missing, null or
// mistyped fields take their defaults without disturbing the others; the
// returned ring is usable even when err reports what was defaulted.
func ParseRing(data []byte) (Ring, error) {
	f, err := wire.Parse(data)
	errs := wire.Errors{}
	errs.Add(err)

	field := func(key string) *float64 {
		v, err := f.Float(key)
		errs.Add(err)
		return v
	}
	color, err := hsb.ParsePatch(f.Raw("color"))
	errs.Add(err)

	r := Ring{
		X:      finiteOr(field("x"), 0),
		Y:      finiteOr(field("y"), 0),
		Radius: math.Max(0, finiteOr(field("radius"), 0)),
		Alpha:  math.Min(hsb.MaxAlpha, math.Max(0, finiteOr(field("alpha"), hsb.MaxAlpha))),
		Color:  hsb.Merge(color),
	}
	return r, errs.Err()
}

// UnmarshalJSON never fails; see ParseRing for the decode errors.
func (r *Ring) UnmarshalJSON(data []byte) error {
	*r, _ = ParseRing(data)
	return nil
}

// DecodeRing is ParseRing without the error.
func DecodeRing(data []byte) Ring {
	r, _ := ParseRing(data)
	return r
}

type stateWire struct {
	X     *float64  `json:"x"`
	Y     *float64  `json:"y"`
	Speed *float64  `json:"speed"`
	Color hsb.Patch `json:"color"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateWire{X: &s.X, Y: &s.Y, Speed: &s.Speed, Color: hsb.PatchOf(s.Color)})
}

// ParseState decodes a particle state field by field, like ParseRing.
func ParseState(data []byte) (State, error) {
	f, err := wire.Parse(data)
	errs := wire.Errors{}
	errs.Add(err)

	field := func(key string) *float64 {
		v, err := f.Float(key)
		errs.Add(err)
		return v
	}
	color, err := hsb.ParsePatch(f.Raw("color"))
	errs.Add(err)

	st := State{
		X:     finiteOr(field("x"), 0),
		Y:     finiteOr(field("y"), 0),
		Speed: finiteOr(field("speed"), DefaultParams().Speed),
		Color: hsb.Merge(color),
	}
	return st, errs.Err()
}

// UnmarshalJSON never fails; see ParseState for the decode errors.
func (s *State) UnmarshalJSON(data []byte) error {
	*s, _ = ParseState(data)
	return nil
}

func finiteOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fallback
	}
	return *v
}
