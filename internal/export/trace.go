// Package export writes recorded timelines to disk: JSON traces, CSV
// tables, SVG frames and a directory store of past runs.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/timeflow/internal/particle"
	"github.com/san-kum/timeflow/internal/playback"
	"github.com/san-kum/timeflow/internal/timeline"
)

var ErrEmptyTrace = errors.New("export: trace has no frames")

// Trace is a serialized timeline with the settings that produced it.
type Trace struct {
	Session   string              `json:"session"`
	Created   time.Time           `json:"created"`
	Viewport  particle.Viewport   `json:"viewport"`
	TimeScale float64             `json:"timeScale"`
	Params    particle.Params     `json:"params"`
	Cursor    int                 `json:"cursor"`
	Frames    []timeline.Snapshot `json:"frames"`
	Metrics   map[string]float64  `json:"metrics,omitempty"`
}

// NewTrace captures the session's full history.
func NewTrace(s *playback.Session, metrics map[string]float64) *Trace {
	return &Trace{
		Session:   s.ID(),
		Created:   time.Now().UTC(),
		Viewport:  s.Viewport(),
		TimeScale: s.TimeScale(),
		Params:    s.Settings().Params,
		Cursor:    s.Timeline().CurrentIndex(),
		Frames:    s.Timeline().Frames(),
		Metrics:   metrics,
	}
}

func WriteJSON(w io.Writer, t *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func SaveJSON(path string, t *Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer file.Close()

	if err := WriteJSON(file, t); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
