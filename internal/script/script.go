// Package script loads scripted input sequences for headless runs.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/timeflow/internal/metrics"
	"github.com/san-kum/timeflow/internal/playback"
)

var (
	ErrUnknownInput = errors.New("script: unknown input")
	ErrInvalidStep  = errors.New("script: invalid step")
)

// Scenario is a named input sequence. Ticks is the run length used when the
// caller does not supply one.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Ticks       int    `yaml:"ticks"`
	Steps       []Step `yaml:"steps"`
}

// Step delivers one input before tick At. Index feeds scrub moves and
// releases, Width and Height feed resizes. Repeat delivers the input that
// many times on the same tick.
type Step struct {
	At     int     `yaml:"at"`
	Input  string  `yaml:"input"`
	Index  float64 `yaml:"index,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Repeat int     `yaml:"repeat,omitempty"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if _, err := sc.Schedule(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s Step) toInput() (playback.Input, error) {
	kind, ok := playback.ParseInputKind(s.Input)
	if !ok {
		return playback.Input{}, fmt.Errorf("%w: %q", ErrUnknownInput, s.Input)
	}
	return playback.Input{Kind: kind, Index: s.Index, Width: s.Width, Height: s.Height}, nil
}

// Schedule converts the steps into runner inputs.
func (sc *Scenario) Schedule() ([]playback.Scheduled, error) {
	out := make([]playback.Scheduled, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		if step.At < 0 {
			return nil, fmt.Errorf("%w: step %d: negative tick %d", ErrInvalidStep, i+1, step.At)
		}
		in, err := step.toInput()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		n := max(step.Repeat, 1)
		for range n {
			out = append(out, playback.Scheduled{Tick: step.At, Input: in})
		}
	}
	return out, nil
}

// Length is the run length needed to deliver every step.
func (sc *Scenario) Length() int {
	n := sc.Ticks
	for _, step := range sc.Steps {
		n = max(n, step.At)
	}
	return n
}

// Run plays the scenario against a fresh session. ticks <= 0 uses the
// scenario's own length.
func Run(ctx context.Context, sc *Scenario, settings playback.Settings, ticks int, opts ...playback.Option) (*playback.Session, *playback.Result, error) {
	schedule, err := sc.Schedule()
	if err != nil {
		return nil, nil, err
	}
	if ticks <= 0 {
		ticks = sc.Length()
	}
	s := playback.New(settings, opts...)
	res, err := playback.Run(ctx, s, ticks, schedule)
	if err != nil {
		return s, res, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return s, res, nil
}

// SweepResult is one point of a time-scale sweep.
type SweepResult struct {
	TimeScale float64
	Frames    int
	Metrics   map[string]float64
}

// SweepTimeScales replays sc once per time scale and evaluates the default
// metrics over each recorded history. Replays run concurrently, each on its
// own session; results keep the order of scales.
func SweepTimeScales(ctx context.Context, sc *Scenario, settings playback.Settings, ticks int, scales []float64, opts ...playback.Option) ([]SweepResult, error) {
	results := make([]SweepResult, len(scales))
	errs := make([]error, len(scales))

	var wg sync.WaitGroup
	for i, scale := range scales {
		wg.Add(1)
		go func(idx int, scale float64) {
			defer wg.Done()

			st := settings
			st.TimeScale = scale

			s, _, err := Run(ctx, sc, st, ticks, opts...)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = SweepResult{
				TimeScale: s.TimeScale(),
				Frames:    s.Timeline().FrameCount(),
				Metrics:   metrics.Evaluate(s.Timeline().Frames(), metrics.Defaults()),
			}
			s.Logger().Debug("sweep point", "time_scale", s.TimeScale(), "frames", s.Timeline().FrameCount())
		}(i, scale)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
