// Package rawfile decodes imported files into loosely typed records for the
// course normalizer.
package rawfile

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/uttrack/internal/discovery"
	"github.com/dotcommander/uttrack/internal/frontmatter"
)

// ErrNoRecords is returned when a file decodes to neither a record nor a
// list of records.
var ErrNoRecords = errors.New("no course records")

// Decode parses f according to its type.
func Decode(f discovery.File) (any, error) {
	var raw any
	switch f.Type {
	case discovery.FileTypeJSON:
		if err := json.Unmarshal(f.Contents, &raw); err != nil {
			return nil, fmt.Errorf("%s: invalid JSON: %w", f.RelPath, err)
		}
	case discovery.FileTypeYAML:
		if err := yaml.Unmarshal(f.Contents, &raw); err != nil {
			return nil, fmt.Errorf("%s: invalid YAML: %w", f.RelPath, err)
		}
	case discovery.FileTypeMarkdown:
		// A note file describes one course in its frontmatter; the body is
		// free text.
		doc, err := frontmatter.Parse(f.Contents)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.RelPath, err)
		}
		raw = doc.Data
	default:
		return nil, fmt.Errorf("%s: unsupported file type %s", f.RelPath, f.Type)
	}
	return raw, nil
}

// Records returns the course records in a decoded file: the elements of a
// list, or the value itself when it is a single record. Non-record list
// elements are kept; the normalizer turns them into empty courses.
func Records(raw any) ([]any, error) {
	switch v := raw.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	case map[any]any:
		return []any{v}, nil
	default:
		return nil, ErrNoRecords
	}
}

// DecodeRecords combines Decode and Records.
func DecodeRecords(f discovery.File) ([]any, error) {
	raw, err := Decode(f)
	if err != nil {
		return nil, err
	}
	records, err := Records(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.RelPath, err)
	}
	return records, nil
}
