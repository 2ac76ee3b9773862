package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/timeflow/internal/timeline"
)

var csvHeader = []string{"frame", "x", "y", "hue", "rainbow", "rings", "max_radius"}

// Row is one frame of the CSV table.
type Row struct {
	Frame     int
	X, Y      float64
	Hue       float64
	Rainbow   bool
	Rings     int
	MaxRadius float64
}

func RowOf(i int, f timeline.Snapshot) Row {
	r := Row{
		Frame:   i,
		X:       f.Particle.X,
		Y:       f.Particle.Y,
		Hue:     f.RainbowHue,
		Rainbow: f.RainbowEnabled,
		Rings:   len(f.Rings),
	}
	for _, ring := range f.Rings {
		r.MaxRadius = max(r.MaxRadius, ring.Radius)
	}
	return r
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func WriteCSV(w io.Writer, frames []timeline.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, f := range frames {
		r := RowOf(i, f)
		row := []string{
			strconv.Itoa(r.Frame),
			formatFloat(r.X),
			formatFloat(r.Y),
			formatFloat(r.Hue),
			strconv.FormatBool(r.Rainbow),
			strconv.Itoa(r.Rings),
			formatFloat(r.MaxRadius),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, frames []timeline.Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer file.Close()
	return WriteCSV(file, frames)
}

// ReadCSV parses a table written by WriteCSV. Malformed rows are skipped.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			continue
		}
		var (
			row  Row
			errs [7]error
		)
		row.Frame, errs[0] = strconv.Atoi(rec[0])
		row.X, errs[1] = strconv.ParseFloat(rec[1], 64)
		row.Y, errs[2] = strconv.ParseFloat(rec[2], 64)
		row.Hue, errs[3] = strconv.ParseFloat(rec[3], 64)
		row.Rainbow, errs[4] = strconv.ParseBool(rec[4])
		row.Rings, errs[5] = strconv.Atoi(rec[5])
		row.MaxRadius, errs[6] = strconv.ParseFloat(rec[6], 64)
		if errors.Join(errs[:]...) != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
