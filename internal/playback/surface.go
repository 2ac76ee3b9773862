package playback

import "github.com/san-kum/timeflow/internal/hsb"

type DrawMode int

const (
	Stroke DrawMode = iota
	Fill
)

// Surface is a render target that draws in HSB color space.
// Resize is a view change only; it never touches simulation state.
type Surface interface {
	Clear(bg hsb.Color)
	DrawEllipse(x, y, diameter float64, c hsb.Color, mode DrawMode)
	Resize(width, height float64)
}
