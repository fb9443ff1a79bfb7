// Package frontmatter splits Markdown course notes into their YAML header
// and body.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissing is returned when a document does not open with a --- fence.
var ErrMissing = errors.New("no YAML frontmatter")

var fence = []byte("---")

// Document is a Markdown file with its frontmatter decoded.
type Document struct {
	Data map[string]any
	Body string
}

// Parse extracts the YAML block between the opening and closing --- lines.
// Fences must sit on their own line; a --- inside the body is left alone.
func Parse(content []byte) (*Document, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	first, rest, ok := cutLine(content)
	if !ok || !bytes.Equal(bytes.TrimSpace(first), fence) {
		return nil, ErrMissing
	}

	var header []byte
	for {
		line, next, more := cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), fence) {
			rest = next
			break
		}
		if !more {
			return nil, errors.New("unterminated YAML frontmatter")
		}
		header = append(header, line...)
		header = append(header, '\n')
		rest = next
	}

	doc := &Document{Data: map[string]any{}, Body: string(rest)}
	if err := yaml.Unmarshal(header, &doc.Data); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if doc.Data == nil {
		doc.Data = map[string]any{}
	}
	return doc, nil
}

// cutLine splits off the first line without its line ending. more is false
// when there was no newline left.
func cutLine(b []byte) (line, rest []byte, more bool) {
	line, rest, more = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, more
}
