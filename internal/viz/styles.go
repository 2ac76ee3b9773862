package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/timeflow/internal/playback"
)

type styles struct {
	panel  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	muted  lipgloss.Style
	mode   map[playback.Mode]lipgloss.Style
	played lipgloss.Style
	head   lipgloss.Style
}

func newStyles(t Theme) styles {
	status := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(panelWidth),
		header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Secondary),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
		mode: map[playback.Mode]lipgloss.Style{
			playback.LiveRunning: status(t.Running),
			playback.LivePaused:  status(t.Paused),
			playback.Scrubbing:   status(t.Scrubbing),
		},
		played: lipgloss.NewStyle().Foreground(t.Secondary),
		head:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// scrubBar draws the timeline as a bar of the given width with the cursor
// marked.
func (st styles) scrubBar(cursor, last, width int) string {
	if width < 1 {
		return ""
	}
	pos := barPosition(cursor, last, width)
	return st.played.Render(strings.Repeat("━", pos)) +
		st.head.Render("●") +
		st.muted.Render(strings.Repeat("─", width-pos-1))
}

// barPosition maps a frame index onto a bar cell.
func barPosition(cursor, last, width int) int {
	if last <= 0 || width <= 1 {
		return 0
	}
	pos := cursor * (width - 1) / last
	return min(max(pos, 0), width-1)
}

// barIndex maps a bar cell back onto a fractional frame index.
func barIndex(x, last, width int) float64 {
	if width <= 1 {
		return 0
	}
	x = min(max(x, 0), width-1)
	return float64(x) / float64(width-1) * float64(last)
}
