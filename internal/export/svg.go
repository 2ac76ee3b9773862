package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/playback"
)

// SVG is a Surface that records draw calls as an SVG document.
type SVG struct {
	width, height float64
	session       string
	bg            string
	body          strings.Builder
	trail         []point
	ellipses      int
}

type point struct{ X, Y float64 }

var _ playback.Surface = (*SVG)(nil)

func NewSVG(width, height float64, session string) *SVG {
	return &SVG{width: width, height: height, session: session, bg: "#000000"}
}

func (s *SVG) Clear(bg hsb.Color) {
	s.bg = bg.Hex()
	s.body.Reset()
	s.ellipses = 0
}

func (s *SVG) DrawEllipse(x, y, d float64, c hsb.Color, mode playback.DrawMode) {
	r := d / 2
	paint := fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, c.Hex(), c.Opacity())
	if mode == playback.Stroke {
		paint = fmt.Sprintf(`fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="1"`, c.Hex(), c.Opacity())
	}
	fmt.Fprintf(&s.body, `<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" %s/>`+"\n", x, y, r, r, paint)
	s.ellipses++
}

func (s *SVG) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Trail overlays the particle's recorded path under the drawn frame.
// Points that jump backwards start a new segment so wraps do not draw a
// line across the canvas.
func (s *SVG) Trail(xs, ys []float64) {
	n := min(len(xs), len(ys))
	s.trail = s.trail[:0]
	for i := 0; i < n; i++ {
		s.trail = append(s.trail, point{xs[i], ys[i]})
	}
}

// Ellipses is the number of ellipses drawn since the last Clear.
func (s *SVG) Ellipses() int { return s.ellipses }

func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.width, s.height, s.width, s.height)
	if s.session != "" {
		fmt.Fprintf(&sb, "<!-- session %s -->\n", s.session)
	}
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.bg)

	if len(s.trail) > 1 {
		sb.WriteString(`<path fill="none" stroke="#888888" stroke-opacity="0.4" stroke-width="1" d="`)
		for i, p := range s.trail {
			cmd := "L"
			if i == 0 || p.X < s.trail[i-1].X {
				cmd = "M"
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s%.1f,%.1f", cmd, p.X, p.Y)
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
