package timeline

import (
	"fmt"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/particle"
	"github.com/san-kum/timeflow/internal/wire"
)

// Snapshot is everything needed to render a frame and continue simulating
// from it. Snapshots held by a Timeline are never aliased by callers.
type Snapshot struct {
	Particle       particle.State  `json:"particle"`
	Rings          []particle.Ring `json:"rings"`
	RainbowHue     float64         `json:"rainbowHue" jsonschema:"minimum=0,maximum=360"`
	RainbowEnabled bool            `json:"rainbowModeEnabled"`
}

// Capture builds a snapshot from live state, copying the rings.
func Capture(p particle.State, rings []particle.Ring, rb particle.Rainbow) Snapshot {
	return Snapshot{
		Particle:       p,
		Rings:          particle.CloneRings(rings),
		RainbowHue:     rb.Hue,
		RainbowEnabled: rb.Enabled,
	}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	s.Rings = particle.CloneRings(s.Rings)
	return s
}

func (s Snapshot) Rainbow() particle.Rainbow {
	return particle.Rainbow{Hue: s.RainbowHue, Enabled: s.RainbowEnabled}
}

// Equal reports whether two snapshots hold the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Particle != o.Particle || s.RainbowHue != o.RainbowHue || s.RainbowEnabled != o.RainbowEnabled {
		return false
	}
	if len(s.Rings) != len(o.Rings) {
		return false
	}
	for i := range s.Rings {
		if s.Rings[i] != o.Rings[i] {
			return false
		}
	}
	return true
}

// ParseSnapshot decodes a snapshot field by field. Whatever is missing or
// mistyped takes its default and is reported in err; everything else is kept.
// The hue is wrapped into [0,360).
func ParseSnapshot(data []byte) (Snapshot, error) {
	f, err := wire.Parse(data)
	errs := wire.Errors{}
	errs.Add(err)

	p, err := particle.ParseState(f.Raw("particle"))
	errs.Add(err)

	raws, err := f.List("rings")
	errs.Add(err)
	rings := make([]particle.Ring, 0, len(raws))
	for i, raw := range raws {
		r, err := particle.ParseRing(raw)
		if err != nil {
			errs.Add(fmt.Errorf("rings[%d]: %w", i, err))
		}
		rings = append(rings, r)
	}

	out := Snapshot{Particle: p, Rings: rings}
	hue, err := f.Float("rainbowHue")
	errs.Add(err)
	if hue != nil {
		out.RainbowHue = hsb.WrapHue(*hue)
	}
	enabled, err := f.Bool("rainbowModeEnabled")
	errs.Add(err)
	if enabled != nil {
		out.RainbowEnabled = *enabled
	}
	return out, errs.Err()
}

// UnmarshalJSON never fails; see ParseSnapshot for the decode errors.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	*s, _ = ParseSnapshot(data)
	return nil
}

// DecodeSnapshot is ParseSnapshot without the error.
func DecodeSnapshot(data []byte) Snapshot {
	s, _ := ParseSnapshot(data)
	return s
}
