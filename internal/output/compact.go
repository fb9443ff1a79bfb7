package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// CompactFormatter prints one aligned line per course followed by a single
// summary line.
type CompactFormatter struct {
	w        io.Writer
	quiet    bool
	colorize bool
	styles   printStyles
}

// NewCompactFormatter creates a new CompactFormatter. A nil writer means
// stdout.
func NewCompactFormatter(w io.Writer, quiet, colorize bool) *CompactFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &CompactFormatter{
		w:        w,
		quiet:    quiet,
		colorize: colorize,
		styles:   newPrintStyles(colorize),
	}
}

// Format implements Formatter.
func (f *CompactFormatter) Format(r *Report) error {
	if f.quiet {
		return nil
	}

	var b strings.Builder
	if !r.SummaryOnly {
		nameWidth := 0
		for _, row := range r.Courses {
			nameWidth = max(nameWidth, utf8.RuneCountInString(row.Name))
		}
		for _, row := range r.Courses {
			icon, style := f.statusIcon(row)
			padding := strings.Repeat(" ", nameWidth-utf8.RuneCountInString(row.Name))
			fmt.Fprintf(&b, "%s %2d. %s%s  %6s %-2s  %3d%%\n",
				style.Render(icon), row.Number, row.Name, padding,
				row.FinalScore, f.gradeStyle(row.GradePoint).Render(row.LetterGrade), row.Percent)
		}
		if len(r.Courses) > 0 {
			b.WriteString("\n")
		}
	}
	if _, err := io.WriteString(f.w, b.String()); err != nil {
		return err
	}

	s := r.Summary
	line := fmt.Sprintf("%d %s, %d SKS, GPA %s, %d%% done",
		s.Courses, pluralizeCount("course", s.Courses), s.CreditUnits, s.GPA, s.OverallPct)
	if s.Completed > 0 {
		line += fmt.Sprintf(", %d completed", s.Completed)
	}

	// Every course finished: celebrate!
	allDone := s.Courses > 0 && s.Completed == s.Courses
	switch {
	case f.colorize && allDone && isTTY(f.w):
		printCelebration(f.w, line)
		return nil
	case allDone:
		line = f.styles.good.Render(line)
	}
	_, err := fmt.Fprintln(f.w, line)
	return err
}

// statusIcon marks completed, ongoing and untouched courses.
func (f *CompactFormatter) statusIcon(row CourseRow) (string, lipgloss.Style) {
	switch {
	case row.Total > 0 && row.Completed == row.Total:
		return "✓", f.styles.good
	case row.Completed > 0:
		return "●", f.styles.fair
	default:
		return "○", f.styles.dim
	}
}

func (f *CompactFormatter) gradeStyle(point float64) lipgloss.Style {
	switch {
	case point >= 3:
		return f.styles.good
	case point >= 2:
		return f.styles.fair
	default:
		return f.styles.poor
	}
}

// isTTY reports whether w is a terminal.
func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func pluralizeCount(s string, count int) string {
	if count == 1 {
		return s
	}
	return s + "s"
}
