package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVFormatter writes one CSV row per course. The summary is not part of
// the output.
type CSVFormatter struct {
	w          io.Writer
	outputFile string
}

// NewCSVFormatter creates a new CSVFormatter
func NewCSVFormatter(w io.Writer, outputFile string) *CSVFormatter {
	return &CSVFormatter{w: w, outputFile: outputFile}
}

// Format formats the course rows as CSV
func (f *CSVFormatter) Format(r *Report) error {
	var buf bytes.Buffer
	rows := r.Courses
	if rows == nil {
		rows = []CourseRow{}
	}
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		return fmt.Errorf("error marshaling CSV: %w", err)
	}
	return emit(f.w, f.outputFile, buf.Bytes())
}
