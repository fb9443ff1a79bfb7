package outputters

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/uttrack/internal/config"
	"github.com/dotcommander/uttrack/internal/output"
)

// Formatter renders a report.
type Formatter = output.Formatter

// FormatterFactory creates formatters by name.
type FormatterFactory interface {
	CreateFormatter(format string) (Formatter, error)
}

// DefaultFormatterFactory builds the formatters of the output package from
// the configuration.
type DefaultFormatterFactory struct {
	config *config.Config
	w      io.Writer
}

// CreateFormatter returns the formatter for format.
func (f *DefaultFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	cfg := f.config
	switch format {
	case "console":
		return output.NewConsoleFormatter(f.w, cfg.Quiet, cfg.Verbose, cfg.Color), nil
	case "compact":
		return output.NewCompactFormatter(f.w, cfg.Quiet, cfg.Color), nil
	case "json":
		return output.NewJSONFormatter(f.w, true, cfg.Output), nil
	case "markdown":
		return output.NewMarkdownFormatter(f.w, cfg.Verbose, cfg.Output), nil
	case "csv":
		return output.NewCSVFormatter(f.w, cfg.Output), nil
	case "yaml":
		return output.NewYAMLFormatter(f.w, cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
}

// NewOutputter creates a new Outputter writing to w (stdout when nil).
func NewOutputter(cfg *config.Config, w io.Writer) *Outputter {
	if w == nil {
		w = os.Stdout
	}
	return NewOutputterWithFactory(cfg, &DefaultFormatterFactory{config: cfg, w: w})
}

// NewOutputterWithFactory creates an Outputter with a custom factory.
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{config: cfg, factory: factory}
}

// Format renders the report using the named format.
func (o *Outputter) Format(r *output.Report, format string) error {
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}
	if r.DataDir == "" {
		r.DataDir = o.config.DataDir
	}

	formatter, err := o.factory.CreateFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(r)
}
