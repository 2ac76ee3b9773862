package playback

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/san-kum/timeflow/internal/hsb"
	"github.com/san-kum/timeflow/internal/particle"
	"github.com/san-kum/timeflow/internal/timeline"
)

// Mode is the controller state.
type Mode int

const (
	LiveRunning Mode = iota
	LivePaused
	Scrubbing
)

func (m Mode) String() string {
	switch m {
	case LiveRunning:
		return "running"
	case LivePaused:
		return "paused"
	case Scrubbing:
		return "scrubbing"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Settings configure a session. Zero fields are not defaulted; start from
// DefaultSettings.
type Settings struct {
	Viewport   particle.Viewport
	Params     particle.Params
	TimeScale  float64
	MaxFrames  int
	Background hsb.Color
}

func DefaultSettings() Settings {
	return Settings{
		Viewport:   particle.Viewport{Width: 800, Height: 450},
		Params:     particle.DefaultParams(),
		TimeScale:  1,
		MaxFrames:  0,
		Background: hsb.New(210, 80, 10, 255),
	}
}

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session owns the live simulation state, the timeline and the playback
// controller. All mutation goes through Handle and Tick.
//
// A Session is driven by a single loop and is not safe for concurrent use.
type Session struct {
	id       string
	settings Settings
	logger   *log.Logger

	mode        Mode
	pendingStep bool

	particle  particle.State
	rings     []particle.Ring
	rainbow   particle.Rainbow
	timeScale float64
	showRings bool
	viewport  particle.Viewport

	timeline *timeline.Timeline
}

func New(settings Settings, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		settings: settings,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id[:8])
	s.viewport = settings.Viewport
	s.timeline = timeline.New(s.freshState(), timeline.WithMaxFrames(settings.MaxFrames))
	s.reset()
	return s
}

// freshState loads the initial live state and returns its snapshot.
func (s *Session) freshState() timeline.Snapshot {
	s.particle = particle.Initial(s.settings.Params, s.viewport)
	s.rings = nil
	s.rainbow = particle.Rainbow{}
	return s.capture()
}

func (s *Session) reset() {
	s.timeline.Initialize(s.freshState())
	s.mode = LiveRunning
	s.pendingStep = false
	s.showRings = true
	s.timeScale = QuantizeTimeScale(s.settings.TimeScale)
}

func (s *Session) capture() timeline.Snapshot {
	return timeline.Capture(s.particle, s.rings, s.rainbow)
}

func (s *Session) restore(snap timeline.Snapshot) {
	s.particle = snap.Particle
	s.rings = particle.CloneRings(snap.Rings)
	s.rainbow = snap.Rainbow()
}

// Handle applies one input event.
func (s *Session) Handle(in Input) {
	from := s.mode

	switch in.Kind {
	case InputTogglePause:
		switch s.mode {
		case LiveRunning:
			s.mode = LivePaused
		case LivePaused:
			s.mode = LiveRunning
		case Scrubbing:
			// leaving a scrub this way resumes from wherever the cursor is
			s.mode = LiveRunning
		}

	case InputStep:
		if s.mode == LivePaused {
			s.pendingStep = true
		}

	case InputScrubStart:
		if s.mode != Scrubbing {
			s.pendingStep = false
			s.mode = Scrubbing
		}

	case InputScrubMove:
		if s.mode == Scrubbing {
			s.restore(s.timeline.Seek(in.Index))
		}

	case InputScrubRelease:
		if s.mode == Scrubbing {
			s.restore(s.timeline.Seek(in.Index))
			s.mode = LivePaused
		}

	case InputReset:
		s.reset()
		s.logger.Debug("reset")

	case InputToggleRings:
		s.showRings = !s.showRings

	case InputToggleRainbow:
		s.toggleRainbow()

	case InputTimeScaleUp:
		s.SetTimeScale(s.timeScale + TimeScaleStep)

	case InputTimeScaleDown:
		s.SetTimeScale(s.timeScale - TimeScaleStep)

	case InputResize:
		s.resize(in.Width, in.Height)
	}

	if s.mode != from {
		s.logger.Debug("transition", "input", in, "from", from, "to", s.mode, "cursor", s.timeline.CurrentIndex())
	}
}

func (s *Session) toggleRainbow() {
	s.rainbow.Enabled = !s.rainbow.Enabled
	s.rainbow.Hue = 0
	if s.rainbow.Enabled {
		s.particle.Color = s.settings.Params.RainbowColor(0)
	} else {
		s.particle.Color = hsb.Default
	}

	// The frame on screen has already been captured; when nothing is
	// advancing, recapture it so history matches what is shown.
	if s.mode != LiveRunning {
		s.timeline.OverwriteCurrent(s.capture())
	}
	s.logger.Debug("rainbow", "enabled", s.rainbow.Enabled, "overwrite", s.mode != LiveRunning)
}

func (s *Session) resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.viewport = particle.Viewport{Width: w, Height: h}
}

// SetTimeScale quantizes and clamps v.
func (s *Session) SetTimeScale(v float64) {
	s.timeScale = QuantizeTimeScale(v)
}

// ShouldAdvance reports whether the next Tick will simulate.
func (s *Session) ShouldAdvance() bool {
	switch s.mode {
	case LiveRunning:
		return true
	case LivePaused:
		return s.pendingStep
	}
	return false
}

// Tick runs one frame of the controller. It returns true when the
// simulation advanced and a new frame was recorded.
func (s *Session) Tick() bool {
	if !s.ShouldAdvance() {
		return false
	}
	s.pendingStep = false

	next := particle.Advance(s.particle, s.rings, s.timeScale, s.rainbow, s.viewport, s.settings.Params)
	s.particle = next.Particle
	s.rings = next.Rings
	s.rainbow = next.Rainbow

	s.timeline.RecordAdvance(s.capture())
	return true
}

// Render draws the live state onto surf.
func (s *Session) Render(surf Surface) {
	surf.Clear(s.settings.Background)
	if s.showRings {
		for _, r := range s.rings {
			surf.DrawEllipse(r.X, r.Y, r.Radius*2, r.Color.WithAlpha(r.Alpha), Stroke)
		}
	}
	surf.DrawEllipse(s.particle.X, s.particle.Y, s.settings.Params.Size, s.particle.Color, Fill)
}

func (s *Session) ID() string                  { return s.id }
func (s *Session) Mode() Mode                  { return s.mode }
func (s *Session) PendingStep() bool           { return s.pendingStep }
func (s *Session) Particle() particle.State    { return s.particle }
func (s *Session) Rings() []particle.Ring      { return particle.CloneRings(s.rings) }
func (s *Session) Rainbow() particle.Rainbow   { return s.rainbow }
func (s *Session) TimeScale() float64          { return s.timeScale }
func (s *Session) ShowRings() bool             { return s.showRings }
func (s *Session) Viewport() particle.Viewport { return s.viewport }
func (s *Session) Settings() Settings          { return s.settings }
func (s *Session) Logger() *log.Logger         { return s.logger }

// Timeline exposes the recorded history for read-only use such as plots and
// exports. Callers must not mutate it.
func (s *Session) Timeline() *timeline.Timeline { return s.timeline }

// Status is a read-only summary for front ends.
type Status struct {
	Mode           Mode
	Cursor         int
	Frames         int
	TimeScale      float64
	TimeScaleLabel string
	ShowRings      bool
	Rainbow        bool
	PendingStep    bool
	Rings          int
}

func (s *Session) Status() Status {
	return Status{
		Mode:           s.mode,
		Cursor:         s.timeline.CurrentIndex(),
		Frames:         s.timeline.FrameCount(),
		TimeScale:      s.timeScale,
		TimeScaleLabel: TimeScaleLabel(s.timeScale),
		ShowRings:      s.showRings,
		Rainbow:        s.rainbow.Enabled,
		PendingStep:    s.pendingStep,
		Rings:          len(s.rings),
	}
}
