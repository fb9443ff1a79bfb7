package course

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// MaxScore is the upper bound of every score.
const MaxScore = 100.0

// ParseScore reads the leading number of s, ignoring surrounding whitespace
// and any trailing text ("80 pts" is 80). ok is false when s does not start
// with a number.
func ParseScore(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseCreditUnits reads the leading integer of s ("3 SKS" is 3).
func ParseCreditUnits(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ValidCreditUnits reports whether n is an acceptable credit-unit count.
func ValidCreditUnits(n int) bool {
	return n >= 0 && n <= MaxCreditUnits
}

// ClampScore caps v at MaxScore.
func ClampScore(v float64) float64 {
	return math.Min(MaxScore, v)
}

// FormatScore renders v with the shortest exact representation.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DiscussionValue applies the clamp-or-empty rule shared by live edits and
// the normalizer: unparseable or non-positive values become "", anything
// above MaxScore becomes "100".
func DiscussionValue(s string) string {
	v, ok := ParseScore(s)
	if !ok || v <= 0 {
		return ""
	}
	return FormatScore(ClampScore(v))
}
