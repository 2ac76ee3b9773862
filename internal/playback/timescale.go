package playback

import (
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/timeflow/internal/particle"
)

const TimeScaleStep = 0.25

// QuantizeTimeScale snaps v to the nearest multiple of TimeScaleStep and
// clamps it into the supported range.
func QuantizeTimeScale(v float64) float64 {
	if math.IsNaN(v) {
		return particle.MinTimeScale
	}
	q := math.Round(v/TimeScaleStep) * TimeScaleStep
	q = math.Round(q*100) / 100
	return particle.ClampTimeScale(q)
}

// TimeScaleLabel formats v like "1x", "1.5x" or "0.25x".
func TimeScaleLabel(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "x"
}
