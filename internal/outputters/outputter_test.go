package outputters

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/uttrack/internal/config"
	"github.com/dotcommander/uttrack/internal/output"
)

// =============================================================================
// Mock Formatter for testing
// =============================================================================

type mockFormatter struct {
	formatCalled bool
	formatError  error
	report       *output.Report
}

func (m *mockFormatter) Format(r *output.Report) error {
	m.formatCalled = true
	m.report = r
	return m.formatError
}

// =============================================================================
// Mock FormatterFactory for testing
// =============================================================================

type mockFormatterFactory struct {
	createCalled    bool
	requestedFormat string
	formatter       Formatter
	createError     error
}

func (m *mockFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	m.createCalled = true
	m.requestedFormat = format
	if m.createError != nil {
		return nil, m.createError
	}
	return m.formatter, nil
}

func TestNewOutputter(t *testing.T) {
	cfg := &config.Config{Format: "console"}
	outputter := NewOutputter(cfg, nil)

	if outputter == nil {
		t.Fatal("NewOutputter() returned nil")
	}
	if outputter.config != cfg {
		t.Errorf("NewOutputter() config = %v, want %v", outputter.config, cfg)
	}
	if _, ok := outputter.factory.(*DefaultFormatterFactory); !ok {
		t.Errorf("NewOutputter() factory type = %T, want *DefaultFormatterFactory", outputter.factory)
	}
}

func TestOutputter_Format_Success(t *testing.T) {
	cfg := &config.Config{DataDir: "/data"}
	formatter := &mockFormatter{}
	factory := &mockFormatterFactory{formatter: formatter}
	outputter := NewOutputterWithFactory(cfg, factory)

	r := &output.Report{}
	before := time.Now()
	if err := outputter.Format(r, "markdown"); err != nil {
		t.Fatalf("Format() error = %v, want nil", err)
	}

	if !factory.createCalled || factory.requestedFormat != "markdown" {
		t.Errorf("Format() requested format = %q, want markdown", factory.requestedFormat)
	}
	if !formatter.formatCalled || formatter.report != r {
		t.Error("Format() did not pass the report to the formatter")
	}
	if r.GeneratedAt.Before(before) {
		t.Errorf("Format() did not set GeneratedAt, got %v", r.GeneratedAt)
	}
	if r.DataDir != "/data" {
		t.Errorf("Format() DataDir = %q, want /data", r.DataDir)
	}
}

func TestOutputter_Format_PreservesExistingFields(t *testing.T) {
	existing := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	outputter := NewOutputterWithFactory(&config.Config{DataDir: "/data"}, &mockFormatterFactory{formatter: &mockFormatter{}})

	r := &output.Report{GeneratedAt: existing, DataDir: "/elsewhere"}
	if err := outputter.Format(r, "json"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !r.GeneratedAt.Equal(existing) || r.DataDir != "/elsewhere" {
		t.Errorf("Format() overwrote fields: %v %q", r.GeneratedAt, r.DataDir)
	}
}

func TestOutputter_Format_Errors(t *testing.T) {
	createErr := errors.New("create failed")
	formatErr := errors.New("format failed")

	outputter := NewOutputterWithFactory(&config.Config{}, &mockFormatterFactory{createError: createErr})
	if err := outputter.Format(&output.Report{}, "console"); !errors.Is(err, createErr) {
		t.Errorf("Format() error = %v, want %v", err, createErr)
	}

	outputter = NewOutputterWithFactory(&config.Config{}, &mockFormatterFactory{formatter: &mockFormatter{formatError: formatErr}})
	if err := outputter.Format(&output.Report{}, "console"); !errors.Is(err, formatErr) {
		t.Errorf("Format() error = %v, want %v", err, formatErr)
	}
}

func TestDefaultFormatterFactory(t *testing.T) {
	factory := &DefaultFormatterFactory{config: &config.Config{}, w: &bytes.Buffer{}}

	tests := []struct {
		format string
		want   string
	}{
		{"console", "*output.ConsoleFormatter"},
		{"compact", "*output.CompactFormatter"},
		{"json", "*output.JSONFormatter"},
		{"markdown", "*output.MarkdownFormatter"},
		{"csv", "*output.CSVFormatter"},
		{"yaml", "*output.YAMLFormatter"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := factory.CreateFormatter(tt.format)
			if err != nil {
				t.Fatalf("CreateFormatter(%q) error = %v", tt.format, err)
			}
			if got := typeName(f); got != tt.want {
				t.Errorf("CreateFormatter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}

	if _, err := factory.CreateFormatter("html"); err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Expected unsupported format error, got %v", err)
	}
}

func TestOutputterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	outputter := NewOutputter(&config.Config{Format: "csv"}, &buf)
	if err := outputter.Format(output.BuildReport(nil, nil), "csv"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "number,name,") {
		t.Errorf("Expected a CSV header, got %q", buf.String())
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *output.ConsoleFormatter:
		return "*output.ConsoleFormatter"
	case *output.CompactFormatter:
		return "*output.CompactFormatter"
	case *output.JSONFormatter:
		return "*output.JSONFormatter"
	case *output.MarkdownFormatter:
		return "*output.MarkdownFormatter"
	case *output.CSVFormatter:
		return "*output.CSVFormatter"
	case *output.YAMLFormatter:
		return "*output.YAMLFormatter"
	default:
		return "unknown"
	}
}
