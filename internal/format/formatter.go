// Package format rewrites stored blobs into their canonical form.
package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/links"
	"github.com/dotcommander/uttrack/internal/store"
)

// ErrNotList is returned when a blob does not hold a JSON array.
var ErrNotList = errors.New("stored data is not a list")

// Formatter formats a stored blob canonically.
type Formatter interface {
	// Format takes the raw blob and returns the canonical one. On error the
	// blob is left to the caller untouched.
	Format(content []byte) ([]byte, error)
}

// NewFormatter returns the formatter for the blob stored under key.
func NewFormatter(key string) (Formatter, error) {
	switch key {
	case store.CoursesKey:
		return CourseFormatter{}, nil
	case links.Key:
		return LinkFormatter{}, nil
	default:
		return nil, fmt.Errorf("no formatter for key %q", key)
	}
}

// CourseFormatter normalizes every course record and pads its fixed-size
// lists.
type CourseFormatter struct{}

// Format normalizes a course collection blob.
func (CourseFormatter) Format(content []byte) ([]byte, error) {
	raw, err := decodeList(content)
	if err != nil {
		return nil, err
	}
	courses, _ := course.NormalizeAll(raw)
	return store.EncodeCourses(courses)
}

// LinkFormatter drops bookmarks without an id or URL and trims the rest.
type LinkFormatter struct{}

// Format normalizes a bookmark list blob.
func (LinkFormatter) Format(content []byte) ([]byte, error) {
	raw, err := decodeList(content)
	if err != nil {
		return nil, err
	}
	return links.Encode(links.Normalize(raw))
}

func decodeList(content []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, ok := raw.([]any); !ok {
		return nil, ErrNotList
	}
	return raw, nil
}

// Diff generates a simple line-by-line diff between original and formatted
// content.
func Diff(original, formatted, filename string) string {
	if original == formatted {
		return ""
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", filename)
	fmt.Fprintf(&buf, "+++ %s (formatted)\n", filename)

	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	for i := range max(len(origLines), len(fmtLines)) {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}

		if origLine != fmtLine {
			if origLine != "" {
				fmt.Fprintf(&buf, "- %s\n", origLine)
			}
			if fmtLine != "" {
				fmt.Fprintf(&buf, "+ %s\n", fmtLine)
			}
		}
	}

	return buf.String()
}
