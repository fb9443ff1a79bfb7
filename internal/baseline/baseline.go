// Package baseline records accepted schema deviations so that later checks
// only report new ones.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dotcommander/uttrack/internal/cue"
)

// Issue is a deviation found in one source: a storage key or an imported
// file.
type Issue struct {
	Source string
	cue.ValidationError
}

func (i Issue) String() string {
	return i.Source + ": " + i.ValidationError.String()
}

// Baseline represents a snapshot of known issues that should be ignored
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool // For fast lookup
}

// CreateBaseline creates a new baseline from a list of issues
func CreateBaseline(issues []Issue) *Baseline {
	fingerprints := make([]string, 0, len(issues))
	index := make(map[string]bool)

	for _, issue := range issues {
		fp := fingerprint(issue)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	// Sort for deterministic output
	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Fingerprints: fingerprints,
		index:        index,
	}
}

// LoadBaseline loads a baseline from a JSON file
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// SaveBaseline saves the baseline to a JSON file
func (b *Baseline) SaveBaseline(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown checks if an issue is in the baseline
func (b *Baseline) IsKnown(issue Issue) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[fingerprint(issue)]
}

// Filter drops the known issues and reports how many it dropped.
func (b *Baseline) Filter(issues []Issue) (kept []Issue, suppressed int) {
	for _, issue := range issues {
		if b.IsKnown(issue) {
			suppressed++
			continue
		}
		kept = append(kept, issue)
	}
	return kept, suppressed
}

// fingerprint hashes source, field path and the normalized message. The
// record number is left out: records move when others are added or
// deleted.
func fingerprint(issue Issue) string {
	msg := normalizeMessage(issue.Message)
	data := fmt.Sprintf("%s|%s|%s", issue.Source, issue.Path, msg)

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

var (
	doubleQuoted = regexp.MustCompile(`"[^"]+"`)
	singleQuoted = regexp.MustCompile(`(^|\s)'([^']+)'(\s|$)`)
	number       = regexp.MustCompile(`\b\d+(\.\d+)?\b`)
)

// normalizeMessage replaces concrete values with placeholders so that the
// same deviation with another value still matches.
func normalizeMessage(msg string) string {
	msg = doubleQuoted.ReplaceAllString(msg, `"*"`)

	// Only quotes surrounded by whitespace, to leave contractions alone.
	msg = singleQuoted.ReplaceAllString(msg, `$1'*'$3`)

	msg = number.ReplaceAllString(msg, `N`)

	return strings.Join(strings.Fields(msg), " ")
}
