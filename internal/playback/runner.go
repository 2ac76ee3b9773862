package playback

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNegativeTicks = errors.New("playback: tick count must not be negative")
	ErrScheduleRange = errors.New("playback: scheduled input outside the run")
)

// Scheduled is an input delivered just before the given tick.
type Scheduled struct {
	Tick  int
	Input Input
}

// Observer sees the session after every tick of a headless run.
type Observer interface {
	OnTick(s *Session, tick int, advanced bool)
}

type ObserverFunc func(s *Session, tick int, advanced bool)

func (f ObserverFunc) OnTick(s *Session, tick int, advanced bool) { f(s, tick, advanced) }

type Result struct {
	Ticks    int
	Advanced int
	Inputs   int
	Status   Status
}

// Run drives s for the given number of ticks without a display, delivering
// scheduled inputs in tick order. Inputs scheduled for the same tick keep
// their relative order.
func Run(ctx context.Context, s *Session, ticks int, schedule []Scheduled, observers ...Observer) (*Result, error) {
	if ticks < 0 {
		return nil, ErrNegativeTicks
	}

	pending := make([]Scheduled, len(schedule))
	copy(pending, schedule)
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].Tick < pending[j].Tick })
	for _, sc := range pending {
		if sc.Tick < 0 || sc.Tick > ticks {
			return nil, fmt.Errorf("%w: tick %d (%s), run has %d ticks", ErrScheduleRange, sc.Tick, sc.Input, ticks)
		}
	}

	result := &Result{}
	next := 0
	deliver := func(tick int) {
		for next < len(pending) && pending[next].Tick == tick {
			s.Handle(pending[next].Input)
			result.Inputs++
			next++
		}
	}

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			result.Status = s.Status()
			return result, ctx.Err()
		default:
		}

		deliver(i)
		advanced := s.Tick()
		if advanced {
			result.Advanced++
		}
		result.Ticks++

		for _, obs := range observers {
			obs.OnTick(s, i, advanced)
		}
	}
	// inputs scheduled at the end land after the final tick
	deliver(ticks)

	result.Status = s.Status()
	s.Logger().Debug("run finished", "ticks", result.Ticks, "advanced", result.Advanced, "frames", result.Status.Frames)
	return result, nil
}
