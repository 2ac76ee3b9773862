package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/timeflow/internal/playback"
)

const (
	defaultCols = 80
	defaultRows = 20
	panelWidth  = 40
	plotWindow  = 120
	plotHeight  = 4
	// title above the canvas, scrub bar and help line below it
	chromeRows = 3
	minCols    = 20
	minRows    = 6
)

type TickMsg time.Time

type Options struct {
	FPS   int
	Theme string
}

// Model is the terminal front end. It forwards input to the session, ticks
// it at the configured frame rate and draws it onto a braille canvas.
type Model struct {
	session  *playback.Session
	canvas   *Canvas
	surface  *Surface
	theme    Theme
	styles   styles
	help     help.Model
	fps      int
	dragging bool
	showHelp bool
}

func NewModel(s *playback.Session, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	canvas := NewCanvas(defaultCols, defaultRows)
	theme := GetTheme(opts.Theme)
	return Model{
		session: s,
		canvas:  canvas,
		surface: NewSurface(canvas, s.Viewport()),
		theme:   theme,
		styles:  newStyles(theme),
		help:    help.New(),
		fps:     fps,
	}
}

// Run starts a full-screen program over s and blocks until it quits.
func Run(s *playback.Session, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cols := max(msg.Width-panelWidth-3, minCols)
		rows := max(msg.Height-chromeRows, minRows)
		m.canvas.Resize(cols, rows)
		m.help.Width = msg.Width
		m.session.Logger().Debug("window", "cols", cols, "rows", rows)

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case TickMsg:
		m.session.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	s := m.session
	switch {
	case key.Matches(msg, keys.Pause):
		s.Handle(playback.TogglePause())
	case key.Matches(msg, keys.Step):
		s.Handle(playback.StepForward())
	case key.Matches(msg, keys.Back):
		m.scrubTo(float64(s.Timeline().CurrentIndex() - 1))
	case key.Matches(msg, keys.Forward):
		m.scrubTo(float64(s.Timeline().CurrentIndex() + 1))
	case key.Matches(msg, keys.First):
		m.scrubTo(0)
	case key.Matches(msg, keys.Last):
		m.scrubTo(float64(s.Timeline().LastIndex()))
	case key.Matches(msg, keys.Release):
		s.Handle(playback.ScrubRelease(float64(s.Timeline().CurrentIndex())))
	case key.Matches(msg, keys.Reset):
		s.Handle(playback.Reset())
	case key.Matches(msg, keys.Rings):
		s.Handle(playback.ToggleRings())
	case key.Matches(msg, keys.Rainbow):
		s.Handle(playback.ToggleRainbow())
	case key.Matches(msg, keys.Faster):
		s.Handle(playback.TimeScaleUp())
	case key.Matches(msg, keys.Slower):
		s.Handle(playback.TimeScaleDown())
	case key.Matches(msg, keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		s.Logger().Debug("theme", "name", m.theme.Name)
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
}

// scrubTo enters scrubbing if needed and moves the cursor.
func (m *Model) scrubTo(index float64) {
	if m.session.Mode() != playback.Scrubbing {
		m.session.Handle(playback.ScrubStart())
	}
	m.session.Handle(playback.ScrubMove(index))
}

// barRow is the screen row of the scrub bar.
func (m Model) barRow() int { return 1 + m.canvas.Height }

func (m *Model) handleMouse(msg tea.MouseMsg) {
	last := m.session.Timeline().LastIndex()
	index := barIndex(msg.X, last, m.canvas.Width)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != m.barRow() || msg.X >= m.canvas.Width {
			return
		}
		m.dragging = true
		m.scrubTo(index)
	case tea.MouseActionMotion:
		if m.dragging {
			m.session.Handle(playback.ScrubMove(index))
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.session.Handle(playback.ScrubRelease(index))
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	s := m.session
	m.surface.Resize(s.Viewport().Width, s.Viewport().Height)
	s.Render(m.surface)

	st := s.Status()
	title := m.styles.header.UnsetMarginBottom().Render("TIMEFLOW") + "  " + m.styles.mode[st.Mode].Render(strings.ToUpper(st.Mode.String()))
	bar := m.styles.scrubBar(st.Cursor, st.Frames-1, m.canvas.Width)
	left := lipgloss.JoinVertical(lipgloss.Left, title, m.canvas.Render(), bar)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.styles.panel.Render(m.panel(st)))
	return body + "\n" + m.help.View(keys)
}

func (m Model) panel(st playback.Status) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}

	b.WriteString(m.styles.header.Render("PLAYBACK") + "\n")
	row("Frame", fmt.Sprintf("%d / %d", st.Cursor, st.Frames-1))
	row("Speed", st.TimeScaleLabel)
	rings := fmt.Sprintf("%d", st.Rings)
	if !st.ShowRings {
		rings += " (hidden)"
	}
	row("Rings", rings)
	rainbow := "off"
	if st.Rainbow {
		rainbow = fmt.Sprintf("on  %3.0f°", m.session.Rainbow().Hue)
	}
	row("Rainbow", rainbow)
	if st.PendingStep {
		row("Step", "pending")
	}
	row("Theme", m.theme.Name)
	row("Session", m.session.ID()[:8])

	tl := m.session.Timeline()
	series := tl.SeriesRange(st.Cursor+1-plotWindow, st.Cursor+1)
	if len(series.RingCount) > 1 {
		b.WriteString("\n")
		chart := asciigraph.Plot(series.RingCount, asciigraph.Height(plotHeight), asciigraph.Width(panelWidth-12), asciigraph.Caption("rings"))
		b.WriteString(m.styles.graph.Render(chart) + "\n\n")
		chart = asciigraph.Plot(series.ParticleY, asciigraph.Height(plotHeight), asciigraph.Width(panelWidth-12), asciigraph.Caption("particle y"))
		b.WriteString(m.styles.graph.Render(chart) + "\n")
	}
	return b.String()
}
