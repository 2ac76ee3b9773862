package particle

import "math"

// Step is the state produced by one advancing tick.
type Step struct {
	Particle State
	Rings    []Ring
	Rainbow  Rainbow
}

// Advance computes the next tick. The inputs are not modified; the returned
// ring slice is freshly allocated.
func Advance(p State, rings []Ring, timeScale float64, rb Rainbow, vp Viewport, prm Params) Step {
	t := ClampTimeScale(timeScale)

	p.X += p.Speed * t
	p.Y = prm.PathY(p.X, vp)

	if rb.Enabled {
		rb.Hue = math.Mod(rb.Hue+t, 360)
		p.Color = prm.RainbowColor(rb.Hue)
	}

	next := make([]Ring, 0, len(rings)+1)
	next = append(next, rings...)
	next = append(next, NewRing(p.X, p.Y, p.Color))

	kept := next[:0]
	for _, r := range next {
		r.advance(t, prm.RingGrowth, prm.RingFade)
		if r.Expired() {
			continue
		}
		kept = append(kept, r)
	}

	if p.X > vp.Width+prm.WrapMargin {
		p.X = -prm.WrapMargin
	}

	return Step{Particle: p, Rings: kept, Rainbow: rb}
}
