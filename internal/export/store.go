package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	traceFile = "trace.json"
	framesCSV = "frames.csv"
	metaFile  = "metadata.json"
)

var ErrRunNotFound = errors.New("export: run not found")

// Store keeps one directory per saved run under baseDir.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Session   string             `json:"session"`
	Name      string             `json:"name,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	TimeScale float64            `json:"timeScale"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes the trace, its CSV table and a metadata file into a new run
// directory and returns the run id.
func (s *Store) Save(name string, t *Trace) (string, error) {
	if len(t.Frames) == 0 {
		return "", ErrEmptyTrace
	}
	if err := s.Init(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	prefix := name
	if prefix == "" {
		prefix = "run"
	}
	runID := fmt.Sprintf("%s_%s_%s", prefix, t.Created.Format("20060102-150405"), shortID(t.Session))
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	meta := RunMetadata{
		ID:        runID,
		Session:   t.Session,
		Name:      name,
		Timestamp: t.Created,
		Frames:    len(t.Frames),
		TimeScale: t.TimeScale,
		Metrics:   t.Metrics,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, metaFile), data, 0644); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	if err := SaveJSON(filepath.Join(runDir, traceFile), t); err != nil {
		return "", err
	}
	if err := SaveCSV(filepath.Join(runDir, framesCSV), t.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// List returns saved runs, newest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadRows(runID string) ([]Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesCSV))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file)
}
