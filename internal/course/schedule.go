package course

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ScheduleLayout is the canonical exam schedule form, precise to the minute.
const ScheduleLayout = "2006-01-02T15:04"

var (
	yearFirst = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})(?:(?:T|\s+)(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?$`)
	dayFirst  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})(?:\s+(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?$`)
)

// SanitizeSchedule rewrites a date-time string into ScheduleLayout.
//
// Accepted inputs are year-first dates ("2024-12-25T09:30", "2024-12-25
// 09:30:15", "2024/12/25") and day-first dates ("25/12/2024 09:30",
// "25-12-2024"). A missing time means midnight and seconds are dropped.
// Anything else, including impossible calendar dates, yields "".
func SanitizeSchedule(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	var year, month, day, hour, minute, second string
	if m := yearFirst.FindStringSubmatch(trimmed); m != nil {
		year, month, day, hour, minute, second = m[1], m[2], m[3], m[4], m[5], m[6]
	} else if m := dayFirst.FindStringSubmatch(trimmed); m != nil {
		day, month, year, hour, minute, second = m[1], m[2], m[3], m[4], m[5], m[6]
	} else {
		return ""
	}

	t, ok := buildTime(year, month, day, hour, minute, second)
	if !ok {
		return ""
	}
	return t.Format(ScheduleLayout)
}

// ParseSchedule parses a sanitized schedule.
func ParseSchedule(value string) (time.Time, bool) {
	t, err := time.Parse(ScheduleLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func buildTime(year, month, day, hour, minute, second string) (time.Time, bool) {
	parts := []string{year, month, day, orZero(hour), orZero(minute), orZero(second)}
	n := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}

	// time.Date normalizes overflow (Feb 30 -> Mar 1); reject instead.
	candidate := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", n[0], n[1], n[2], n[3], n[4], n[5])
	t, err := time.Parse("2006-01-02 15:04:05", candidate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
