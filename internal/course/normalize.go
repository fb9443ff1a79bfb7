package course

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize repairs a record of unknown shape into a valid Course. It never
// fails: absent or malformed fields take their defaults.
//
// raw is usually the result of decoding JSON or YAML into an `any`. Both the
// current field names and the legacy names written by older versions of the
// tracker (sks, presensi, diskusi, tugasNilai, praktik, uas, ...) are read.
// A Course (or *Course) is accepted too, which makes Normalize idempotent on
// its own output.
func Normalize(raw any) Course {
	switch v := raw.(type) {
	case Course:
		return Normalize(toRaw(v))
	case *Course:
		if v == nil {
			return Normalize(nil)
		}
		return Normalize(toRaw(*v))
	}

	rec := asMap(raw)
	tut := asMap(lookup(rec, "tutorial"))
	prac := asMap(lookup(rec, "practicum", "praktik"))
	exam := asMap(lookup(rec, "finalExam", "uas"))

	var c Course
	c.Name = asString(lookup(rec, "name"))
	c.CreditUnits = creditUnits(lookup(rec, "creditUnits", "sks"))
	c.Scheme = Scheme(asString(lookup(rec, "scheme")))
	if c.Scheme == "" {
		c.Scheme = DefaultScheme
	}

	fillBools(c.Tutorial.Attendance[:], lookup(tut, "attendance", "presensi"))
	for i, v := range padded(lookup(tut, "discussionScore", "diskusi"), TutorialSessions) {
		c.Tutorial.DiscussionScore[i] = discussionEntry(v)
	}
	fillBools(c.Tutorial.DiscussionStatus[:], lookup(tut, "discussionStatus", "diskusiStatus"))
	for i, score := range c.Tutorial.DiscussionScore {
		if score != "" {
			c.Tutorial.DiscussionStatus[i] = true
		}
	}
	fillBools(c.Tutorial.AssignmentStatus[:], lookup(tut, "assignmentStatus", "tugasStatus"))
	fillStrings(c.Tutorial.AssignmentScore[:], lookup(tut, "assignmentScore", "tugasNilai"))
	fillStrings(c.Tutorial.DiscussionNote[:], lookup(tut, "discussionNote", "catatanDiskusi"))

	fillStrings(c.Practicum.Description[:], lookup(prac, "description", "deskripsi"))
	fillBools(c.Practicum.Status[:], lookup(prac, "status"))
	fillStrings(c.Practicum.Score[:], lookup(prac, "score", "nilai"))

	c.FinalExam.Schedule = SanitizeSchedule(asString(lookup(exam, "schedule", "jadwal")))
	c.FinalExam.Target = asString(lookup(exam, "target"))
	c.FinalExam.Modules = make([]bool, ModuleCount(c.CreditUnits))
	fillBools(c.FinalExam.Modules, lookup(exam, "modules", "modul"))

	return c
}

// NormalizeAll normalizes every element of a decoded array. Anything that is
// not an array yields an empty collection and ok=false.
func NormalizeAll(raw any) (courses []Course, ok bool) {
	items, isList := raw.([]any)
	if !isList {
		return []Course{}, false
	}
	courses = make([]Course, 0, len(items))
	for _, item := range items {
		courses = append(courses, Normalize(item))
	}
	return courses, true
}

func toRaw(c Course) any {
	data, err := json.Marshal(c)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func lookup(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out
	default:
		return map[string]any{}
	}
}

// padded returns exactly n entries of v, padding with nil.
func padded(v any, n int) []any {
	out := make([]any, n)
	if items, ok := v.([]any); ok {
		copy(out, items)
	}
	return out
}

func fillBools(dst []bool, v any) {
	for i, item := range padded(v, len(dst)) {
		dst[i] = asBool(item)
	}
}

func fillStrings(dst []string, v any) {
	for i, item := range padded(v, len(dst)) {
		dst[i] = asString(item)
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	case float64:
		return b != 0
	case int:
		return b != 0
	default:
		return false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return FormatScore(s)
	case int:
		return strconv.Itoa(s)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func discussionEntry(v any) string {
	switch s := v.(type) {
	case bool:
		if s {
			return FormatScore(MaxScore)
		}
		return ""
	case nil:
		return ""
	default:
		return DiscussionValue(asString(s))
	}
}

func creditUnits(v any) int {
	var n int
	switch s := v.(type) {
	case float64:
		n = int(math.Max(0, math.Min(s, MaxCreditUnits)))
	case int:
		n = s
	default:
		var ok bool
		if n, ok = ParseCreditUnits(asString(v)); !ok {
			// Too many digits for an int: saturate by sign.
			if m := intPrefix.FindString(strings.TrimSpace(asString(v))); m != "" && m[0] != '-' {
				n = MaxCreditUnits
			}
		}
	}
	return min(max(n, 0), MaxCreditUnits)
}
