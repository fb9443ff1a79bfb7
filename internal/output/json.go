package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w          io.Writer
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		w:          w,
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport wraps the report with producer metadata.
type JSONReport struct {
	Header JSONHeader `json:"header"`
	*Report
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Timestamp string `json:"timestamp"`
}

// Format formats the report as JSON
func (f *JSONFormatter) Format(r *Report) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      Tool,
			Timestamp: r.GeneratedAt.Format(time.RFC3339),
		},
		Report: r,
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	return emit(f.w, f.outputFile, append(jsonBytes, '\n'))
}
