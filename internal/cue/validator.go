package cue

import (
	"embed"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Severity levels
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationError represents a single deviation of a stored record from
// the canonical shape.
type ValidationError struct {
	Record   int    // 1-based record number, 0 for the collection itself
	Path     string // dotted field path inside the record
	Message  string
	Severity string
}

func (e ValidationError) String() string {
	var b strings.Builder
	if e.Record > 0 {
		fmt.Fprintf(&b, "record %d", e.Record)
	} else {
		b.WriteString("collection")
	}
	if e.Path != "" {
		b.WriteString(": " + e.Path)
	}
	b.WriteString(": " + e.Message)
	return b.String()
}

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every embedded schema file.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}
		// Extract base name (course.cue -> course)
		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateCourse checks one decoded record against #Course.
func (v *Validator) ValidateCourse(data map[string]any) ([]ValidationError, error) {
	return v.validateAgainst("course", "#Course", data)
}

// ValidateCollection checks a decoded course collection. A value that is
// not a list is reported as a single collection-level error.
func (v *Validator) ValidateCollection(raw any) ([]ValidationError, error) {
	items, ok := raw.([]any)
	if !ok {
		return []ValidationError{{
			Message:  fmt.Sprintf("expected a list of courses, got %s", kindOf(raw)),
			Severity: SeverityError,
		}}, nil
	}

	var out []ValidationError
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			out = append(out, ValidationError{
				Record:   i + 1,
				Message:  fmt.Sprintf("expected an object, got %s", kindOf(item)),
				Severity: SeverityError,
			})
			continue
		}
		errs, err := v.ValidateCourse(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		for _, e := range errs {
			e.Record = i + 1
			out = append(out, e)
		}
	}
	return out, nil
}

// validateAgainst validates data against a definition of a loaded schema
func (v *Validator) validateAgainst(schemaName, definition string, data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("schema %q not loaded", schemaName)
	}
	def := schema.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return nil, fmt.Errorf("schema %q has no %s", schemaName, definition)
	}

	dataValue := v.ctx.Encode(integral(data))
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	// Unify checks that data and schema can both hold; Validate with
	// Concrete then catches missing fields.
	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err), nil
	}
	return nil, nil
}

// extractErrors flattens a CUE error into one entry per failing path.
func extractErrors(err error) []ValidationError {
	seen := make(map[string]bool)
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		path := strings.Join(e.Path(), ".")
		key := path + "\x00" + msg
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ValidationError{Path: path, Message: msg, Severity: SeverityError})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// integral rewrites whole float64 values to int64 so JSON-decoded integers
// satisfy int constraints.
func integral(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = integral(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = integral(val)
		}
		return out
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
