package output

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	w          io.Writer
	outputFile string
}

// NewYAMLFormatter creates a new YAMLFormatter
func NewYAMLFormatter(w io.Writer, outputFile string) *YAMLFormatter {
	return &YAMLFormatter{w: w, outputFile: outputFile}
}

// Format formats the report as YAML
func (f *YAMLFormatter) Format(r *Report) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("error marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error marshaling YAML: %w", err)
	}
	return emit(f.w, f.outputFile, buf.Bytes())
}
