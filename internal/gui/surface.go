package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/playback"
)

// Surface draws onto the current raylib frame. World units are pixels.
type Surface struct {
	width, height float64
}

var _ playback.Surface = (*Surface)(nil)

func toColor(c hsb.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(r, g, b, a)
}

func (s *Surface) Clear(bg hsb.Color) {
	rl.ClearBackground(toColor(bg))
}

func (s *Surface) DrawEllipse(x, y, d float64, c hsb.Color, mode playback.DrawMode) {
	r := float32(d / 2)
	cx, cy := int32(x), int32(y)
	if mode == playback.Fill {
		rl.DrawEllipse(cx, cy, r, r, toColor(c))
		return
	}
	rl.DrawEllipseLines(cx, cy, r, r, toColor(c))
}

// Resize records the drawable size. The window itself is sized by the
// user; this only keeps HUD layout in step with it.
func (s *Surface) Resize(width, height float64) {
	s.width, s.height = width, height
}

func (s *Surface) Size() (float64, float64) { return s.width, s.height }
