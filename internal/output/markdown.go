package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w          io.Writer
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		w:          w,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format formats the report as Markdown
func (f *MarkdownFormatter) Format(r *Report) error {
	var builder strings.Builder
	s := r.Summary

	// Header
	builder.WriteString("# Study Progress Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	if r.DataDir != "" {
		builder.WriteString(fmt.Sprintf("**Data:** `%s`\n\n", r.DataDir))
	}
	if r.Filter != "" {
		builder.WriteString(fmt.Sprintf("**Showing:** %s\n\n", r.Filter))
	}

	// Summary Table
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Value |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Courses | %d |\n", s.Courses))
	builder.WriteString(fmt.Sprintf("| Credit units | %d |\n", s.CreditUnits))
	builder.WriteString(fmt.Sprintf("| GPA | %s |\n", s.GPA))
	builder.WriteString(fmt.Sprintf("| Progress | %d%% (%d/%d) |\n", s.OverallPct, s.ItemsDone, s.ItemsTotal))
	builder.WriteString(fmt.Sprintf("| Completed / ongoing / not started | %d / %d / %d |\n", s.Completed, s.Ongoing, s.NotStarted))
	builder.WriteString(fmt.Sprintf("| Active courses | %d |\n", s.Active))
	builder.WriteString(fmt.Sprintf("| Highest / lowest / average | %s / %s / %s |\n", s.HighestScore, s.LowestScore, s.AverageScore))
	builder.WriteString("\n")
	if r.SummaryOnly {
		return emit(f.w, f.outputFile, []byte(builder.String()))
	}

	// Courses
	builder.WriteString("## Courses\n\n")
	if len(r.Courses) == 0 {
		builder.WriteString("*No courses to show.*\n")
	} else {
		builder.WriteString("| # | Course | Scheme | SKS | Tutorial | Exam | Final | Grade | Credit points | Progress |\n")
		builder.WriteString("|---|--------|--------|-----|----------|------|-------|-------|---------------|----------|\n")
		for _, row := range r.Courses {
			builder.WriteString(fmt.Sprintf("| %d | %s | %s | %d | %s | %s | %s | %s (%.2f) | %s | %d%% |\n",
				row.Number, escapeCell(row.Name), row.SchemeLabel, row.CreditUnits,
				row.TutorialScore, row.ExamScore, row.FinalScore,
				row.LetterGrade, row.GradePoint, row.CreditPoints, row.Percent))
		}
	}

	if f.verbose {
		for _, row := range r.Courses {
			if len(row.Details) == 0 {
				continue
			}
			builder.WriteString(fmt.Sprintf("\n### %d. %s\n\n", row.Number, row.Name))
			for _, m := range row.Details {
				builder.WriteString(fmt.Sprintf("- **%s** (%s): %.2f / %.2f, %d counted", m.Name, m.Category, m.Points, m.MaxPoints, m.Counted))
				if m.Note != "" {
					builder.WriteString(" - " + m.Note)
				}
				builder.WriteString("\n")
			}
		}
	}

	return emit(f.w, f.outputFile, []byte(builder.String()))
}

// escapeCell keeps a value from breaking the table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
