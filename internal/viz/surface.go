package viz

import (
	"math"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/particle"
	"github.com/san-kum/timeflow/internal/playback"
)

// Surface draws world-space ellipses onto a braille canvas, stretching the
// world viewport to fill the canvas.
type Surface struct {
	canvas *Canvas
	world  particle.Viewport
	bg     hsb.Color
}

var _ playback.Surface = (*Surface)(nil)

func NewSurface(canvas *Canvas, world particle.Viewport) *Surface {
	return &Surface{canvas: canvas, world: world, bg: hsb.New(0, 0, 0, hsb.MaxAlpha)}
}

func (s *Surface) Clear(bg hsb.Color) {
	s.bg = bg
	s.canvas.Clear()
	s.canvas.Background = bg.Hex()
}

// Resize changes the world extent mapped onto the canvas.
func (s *Surface) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.world = particle.Viewport{Width: width, Height: height}
}

func (s *Surface) scale() (float64, float64) {
	return float64(s.canvas.SubWidth()) / s.world.Width, float64(s.canvas.SubHeight()) / s.world.Height
}

// ToCanvas maps a world point to dot coordinates.
func (s *Surface) ToCanvas(x, y float64) (int, int) {
	sx, sy := s.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

func (s *Surface) DrawEllipse(x, y, d float64, c hsb.Color, mode playback.DrawMode) {
	sx, sy := s.scale()
	cx, cy := x*sx, y*sy
	rx, ry := d/2*sx, d/2*sy
	color := c.Over(s.bg).Hex()

	// anything under a dot wide is drawn as one dot
	if rx < 0.5 && ry < 0.5 {
		s.canvas.SetColor(int(math.Floor(cx)), int(math.Floor(cy)), color)
		return
	}

	if mode == playback.Fill {
		s.fill(cx, cy, max(rx, 0.5), max(ry, 0.5), color)
		return
	}
	s.stroke(cx, cy, rx, ry, color)
}

func (s *Surface) fill(cx, cy, rx, ry float64, color string) {
	for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
		for px := int(math.Floor(cx - rx)); px <= int(math.Ceil(cx+rx)); px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.canvas.SetColor(px, py, color)
			}
		}
	}
}

func (s *Surface) stroke(cx, cy, rx, ry float64, color string) {
	n := max(8, int(math.Ceil(2*math.Pi*max(rx, ry))))
	px, py := int(math.Floor(cx+rx)), int(math.Floor(cy))
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		nx := int(math.Floor(cx + rx*math.Cos(a)))
		ny := int(math.Floor(cy + ry*math.Sin(a)))
		s.canvas.DrawLine(px, py, nx, ny, color)
		px, py = nx, ny
	}
}
