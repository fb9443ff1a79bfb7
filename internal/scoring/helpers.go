package scoring

import (
	"strconv"

	"github.com/dotcommander/uttrack/internal/course"
)

// Category weights inside the tutorial score.
const (
	AttendanceWeight = 20.0
	DiscussionWeight = 30.0
	AssignmentWeight = 50.0
)

// Placeholder is displayed for categories a scheme does not track.
const Placeholder = "-"

// scoredItem is one status/score pair that may enter an average.
type scoredItem struct {
	done  bool
	score string
}

// averageCompleted averages the scores of completed items whose score
// parses and passes accept. Scores are capped at 100. It returns 0 when no
// item qualifies.
func averageCompleted(items []scoredItem, accept func(float64) bool) (avg float64, counted int) {
	var sum float64
	for _, it := range items {
		if !it.done {
			continue
		}
		v, ok := course.ParseScore(it.score)
		if !ok || !accept(v) {
			continue
		}
		sum += course.ClampScore(v)
		counted++
	}
	if counted == 0 {
		return 0, 0
	}
	return sum / float64(counted), counted
}

func nonNegative(v float64) bool { return v >= 0 }

func positive(v float64) bool { return v > 0 }

// weighted scales a 0-100 average to its share of weight points.
func weighted(avg, weight float64) float64 {
	return avg / 100 * weight
}

// formatFixed renders v with two decimals.
func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// round2 rounds v the same way formatFixed displays it.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(formatFixed(v), 64)
	if err != nil {
		return v
	}
	return r
}

// boolToInt converts a boolean to 0 or 1
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
