// Package gui is the desktop front end, a raylib window over a playback
// session.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/timeflow/internal/playback"
)

// Chrome colors
var (
	ColText    = rl.NewColor(200, 200, 210, 255)
	ColTextDim = rl.NewColor(110, 110, 130, 255)
	ColAccent  = rl.NewColor(255, 200, 90, 255)
	ColBar     = rl.NewColor(60, 60, 80, 200)
	ColPlayed  = rl.NewColor(140, 170, 255, 220)
)

const (
	barMargin  = 20
	barHeight  = 10
	barOffset  = 36
	buttonSize = 22
	telemetryW = 240
	telemetryH = 50
	plotWindow = 240
)

type Options struct {
	FPS   int
	Title string
}

type App struct {
	session  *playback.Session
	surface  *Surface
	dragging bool
	quit     bool
}

func NewApp(s *playback.Session) *App {
	vp := s.Viewport()
	return &App{
		session: s,
		surface: &Surface{width: vp.Width, height: vp.Height},
	}
}

func initWindow(s *playback.Session, opts Options) {
	vp := s.Viewport()
	title := opts.Title
	if title == "" {
		title = "timeflow"
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(vp.Width), int32(vp.Height), title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// Run opens a window over s and blocks until it is closed.
func Run(s *playback.Session, opts Options) {
	initWindow(s, opts)
	defer rl.CloseWindow()
	app := NewApp(s)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// Update maps this frame's input onto session inputs, then ticks once.
func (a *App) Update() {
	s := a.session

	if rl.IsWindowResized() {
		w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
		s.Handle(playback.Resize(w, h))
		a.surface.Resize(w, h)
		s.Logger().Debug("window resized", "width", w, "height", h)
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		s.Handle(playback.TogglePause())
	case rl.IsKeyPressed(rl.KeyPeriod), rl.IsKeyPressed(rl.KeyN):
		s.Handle(playback.StepForward())
	case rl.IsKeyPressed(rl.KeyLeftBracket), rl.IsKeyPressed(rl.KeyLeft):
		a.scrubTo(float64(s.Timeline().CurrentIndex() - 1))
	case rl.IsKeyPressed(rl.KeyRightBracket), rl.IsKeyPressed(rl.KeyRight):
		a.scrubTo(float64(s.Timeline().CurrentIndex() + 1))
	case rl.IsKeyPressed(rl.KeyHome):
		a.scrubTo(0)
	case rl.IsKeyPressed(rl.KeyEnd):
		a.scrubTo(float64(s.Timeline().LastIndex()))
	case rl.IsKeyPressed(rl.KeyEnter):
		s.Handle(playback.ScrubRelease(float64(s.Timeline().CurrentIndex())))
	case rl.IsKeyPressed(rl.KeyR):
		s.Handle(playback.Reset())
	case rl.IsKeyPressed(rl.KeyO):
		s.Handle(playback.ToggleRings())
	case rl.IsKeyPressed(rl.KeyC):
		s.Handle(playback.ToggleRainbow())
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		s.Handle(playback.TimeScaleUp())
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		s.Handle(playback.TimeScaleDown())
	}

	a.updateMouse()
	s.Tick()
}

func (a *App) scrubTo(index float64) {
	if a.session.Mode() != playback.Scrubbing {
		a.session.Handle(playback.ScrubStart())
	}
	a.session.Handle(playback.ScrubMove(index))
}

func (a *App) barRect() rl.Rectangle {
	w, h := a.surface.Size()
	return rl.NewRectangle(barMargin, float32(h)-barOffset, float32(w)-2*barMargin, barHeight)
}

func (a *App) buttonRects() (minus, plus rl.Rectangle) {
	w, _ := a.surface.Size()
	x := float32(w) - barMargin - 3*buttonSize
	return rl.NewRectangle(x, barMargin, buttonSize, buttonSize),
		rl.NewRectangle(x+2*buttonSize, barMargin, buttonSize, buttonSize)
}

// barIndex maps a mouse x onto a fractional frame index.
func (a *App) barIndex(x float32) float64 {
	bar := a.barRect()
	t := (x - bar.X) / bar.Width
	t = min(max(t, 0), 1)
	return float64(t) * float64(a.session.Timeline().LastIndex())
}

func (a *App) updateMouse() {
	s := a.session
	mouse := rl.GetMousePosition()

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		minus, plus := a.buttonRects()
		switch {
		case rl.CheckCollisionPointRec(mouse, minus):
			s.Handle(playback.TimeScaleDown())
		case rl.CheckCollisionPointRec(mouse, plus):
			s.Handle(playback.TimeScaleUp())
		case rl.CheckCollisionPointRec(mouse, a.barRect()):
			a.dragging = true
			a.scrubTo(a.barIndex(mouse.X))
		}
	case rl.IsMouseButtonReleased(rl.MouseLeftButton) && a.dragging:
		a.dragging = false
		s.Handle(playback.ScrubRelease(a.barIndex(mouse.X)))
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && a.dragging:
		s.Handle(playback.ScrubMove(a.barIndex(mouse.X)))
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	a.session.Render(a.surface)
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	st := a.session.Status()
	w, h := a.surface.Size()

	rl.DrawText("timeflow", barMargin, barMargin, 20, ColText)
	mode := fmt.Sprintf("%s  frame %d/%d", st.Mode, st.Cursor, st.Frames-1)
	if st.PendingStep {
		mode += "  step"
	}
	rl.DrawText(mode, barMargin, barMargin+26, 14, ColTextDim)

	minus, plus := a.buttonRects()
	rl.DrawRectangleLinesEx(minus, 1, ColTextDim)
	rl.DrawRectangleLinesEx(plus, 1, ColTextDim)
	rl.DrawText("-", int32(minus.X)+8, int32(minus.Y)+3, 16, ColText)
	rl.DrawText("+", int32(plus.X)+7, int32(plus.Y)+3, 16, ColText)
	label := st.TimeScaleLabel
	lw := rl.MeasureText(label, 16)
	rl.DrawText(label, int32(minus.X+minus.Width+(buttonSize-float32(lw))/2), int32(minus.Y)+3, 16, ColAccent)

	a.drawScrubBar(st)
	a.DrawTelemetry()

	rl.DrawText("[SPACE] PAUSE  [.] STEP  [ ] SCRUB  [O] RINGS  [C] RAINBOW  [R] RESET  [Q] QUIT",
		barMargin, int32(h)-18, 10, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(w)-70, int32(h)-18, 10, ColTextDim)
}

func (a *App) drawScrubBar(st playback.Status) {
	bar := a.barRect()
	rl.DrawRectangleRec(bar, ColBar)

	t := float32(0)
	if st.Frames > 1 {
		t = float32(st.Cursor) / float32(st.Frames-1)
	}
	played := bar
	played.Width = bar.Width * t
	rl.DrawRectangleRec(played, ColPlayed)
	rl.DrawCircle(int32(bar.X+played.Width), int32(bar.Y+bar.Height/2), barHeight, ColAccent)
}

// DrawTelemetry plots ring counts for the frames leading up to the cursor.
func (a *App) DrawTelemetry() {
	tl := a.session.Timeline()
	cursor := tl.CurrentIndex()
	series := tl.SeriesRange(cursor+1-plotWindow, cursor+1).RingCount
	if len(series) < 2 {
		return
	}

	w, h := a.surface.Size()
	rectX := float32(w) - barMargin - telemetryW
	rectY := float32(h) - barOffset - telemetryH - 16

	minVal, maxVal := series[0], series[0]
	for _, v := range series {
		minVal, maxVal = min(minVal, v), max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(series))
	for i, val := range series {
		px := rectX + float32(i)/float32(len(series)-1)*telemetryW
		norm := (val - minVal) / (maxVal - minVal)
		py := rectY + telemetryH - float32(norm)*telemetryH
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, rl.ColorAlpha(ColPlayed, 0.8))
	rl.DrawText(fmt.Sprintf("rings %d", int(series[len(series)-1])), int32(rectX), int32(rectY)-14, 10, ColText)
}
