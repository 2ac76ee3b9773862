package playback

import "fmt"

// InputKind enumerates the discrete UI events the controller consumes.
type InputKind int

const (
	InputTogglePause InputKind = iota
	InputStep
	InputScrubStart
	InputScrubMove
	InputScrubRelease
	InputReset
	InputToggleRings
	InputToggleRainbow
	InputTimeScaleUp
	InputTimeScaleDown
	InputResize
)

var inputNames = map[InputKind]string{
	InputTogglePause:   "toggle_pause",
	InputStep:          "step",
	InputScrubStart:    "scrub_start",
	InputScrubMove:     "scrub_move",
	InputScrubRelease:  "scrub_release",
	InputReset:         "reset",
	InputToggleRings:   "toggle_rings",
	InputToggleRainbow: "toggle_rainbow",
	InputTimeScaleUp:   "time_scale_up",
	InputTimeScaleDown: "time_scale_down",
	InputResize:        "resize",
}

func (k InputKind) String() string {
	if name, ok := inputNames[k]; ok {
		return name
	}
	return fmt.Sprintf("input(%d)", int(k))
}

// ParseInputKind is the inverse of InputKind.String.
func ParseInputKind(name string) (InputKind, bool) {
	for k, n := range inputNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Input is one UI event. Index is used by scrub moves and releases, Width
// and Height by resizes.
type Input struct {
	Kind   InputKind
	Index  float64
	Width  float64
	Height float64
}

func (in Input) String() string {
	switch in.Kind {
	case InputScrubMove, InputScrubRelease:
		return fmt.Sprintf("%s(%g)", in.Kind, in.Index)
	case InputResize:
		return fmt.Sprintf("%s(%gx%g)", in.Kind, in.Width, in.Height)
	default:
		return in.Kind.String()
	}
}

func TogglePause() Input           { return Input{Kind: InputTogglePause} }
func StepForward() Input           { return Input{Kind: InputStep} }
func ScrubStart() Input            { return Input{Kind: InputScrubStart} }
func ScrubMove(i float64) Input    { return Input{Kind: InputScrubMove, Index: i} }
func ScrubRelease(i float64) Input { return Input{Kind: InputScrubRelease, Index: i} }
func Reset() Input                 { return Input{Kind: InputReset} }
func ToggleRings() Input           { return Input{Kind: InputToggleRings} }
func ToggleRainbow() Input         { return Input{Kind: InputToggleRainbow} }
func TimeScaleUp() Input           { return Input{Kind: InputTimeScaleUp} }
func TimeScaleDown() Input         { return Input{Kind: InputTimeScaleDown} }

func Resize(w, h float64) Input {
	return Input{Kind: InputResize, Width: w, Height: h}
}
