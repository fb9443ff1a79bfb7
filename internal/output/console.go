package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/scoring"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	colorize bool
	styles   printStyles
}

// NewConsoleFormatter creates a new ConsoleFormatter. A nil writer means
// stdout.
func NewConsoleFormatter(w io.Writer, quiet, verbose, colorize bool) *ConsoleFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleFormatter{
		w:        w,
		quiet:    quiet,
		verbose:  verbose,
		colorize: colorize,
		styles:   newPrintStyles(colorize),
	}
}

// printStyles holds all the styles used in the console report.
type printStyles struct {
	header lipgloss.Style
	box    lipgloss.Style
	name   lipgloss.Style
	good   lipgloss.Style
	fair   lipgloss.Style
	poor   lipgloss.Style
	dim    lipgloss.Style
}

func newPrintStyles(colorize bool) printStyles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return printStyles{
			header: plain,
			box:    plain.Border(lipgloss.RoundedBorder()).Padding(0, 1),
			name:   plain, good: plain, fair: plain, poor: plain, dim: plain,
		}
	}
	return printStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1),
		name:   lipgloss.NewStyle().Bold(true),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		fair:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		poor:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Format formats the report for console output
func (f *ConsoleFormatter) Format(r *Report) error {
	if f.quiet {
		return nil
	}

	var b strings.Builder
	b.WriteString(f.styles.box.Render(f.summaryBlock(r.Summary)))
	b.WriteString("\n")
	if r.SummaryOnly {
		_, err := io.WriteString(f.w, b.String())
		return err
	}

	if r.Filter != "" {
		fmt.Fprintf(&b, "\n%s\n", f.styles.dim.Render("Showing: "+r.Filter))
	}

	if len(r.Courses) == 0 {
		if r.Summary.Courses == 0 {
			b.WriteString("\nNo courses tracked yet. Add one with `uttrack add`.\n")
		} else {
			b.WriteString("\nNo course matches the current selection.\n")
		}
	}
	for _, row := range r.Courses {
		b.WriteString("\n")
		f.writeCourse(&b, row)
	}

	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *ConsoleFormatter) summaryBlock(s scoring.Summary) string {
	var b strings.Builder
	b.WriteString(f.styles.header.Render("SEMESTER SUMMARY"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Courses: %d │ Credit units: %d │ GPA: %s\n", s.Courses, s.CreditUnits, s.GPA)
	fmt.Fprintf(&b, "Progress: %s %3d%% (%d/%d)\n", f.renderBar(s.OverallPct), s.OverallPct, s.ItemsDone, s.ItemsTotal)
	fmt.Fprintf(&b, "Completed: %d │ Ongoing: %d │ Not started: %d │ Active: %d\n", s.Completed, s.Ongoing, s.NotStarted, s.Active)
	fmt.Fprintf(&b, "Highest: %s │ Lowest: %s │ Average: %s", s.HighestScore, s.LowestScore, s.AverageScore)
	return b.String()
}

func (f *ConsoleFormatter) writeCourse(b *strings.Builder, row CourseRow) {
	fmt.Fprintf(b, "%s %s %s\n",
		f.styles.dim.Render(fmt.Sprintf("%d.", row.Number)),
		f.styles.name.Render(row.Name),
		f.styles.dim.Render(fmt.Sprintf("[%s, %d SKS]", row.SchemeLabel, row.CreditUnits)))

	policy := scoring.PolicyFor(course.Scheme(row.Scheme))
	tutorialLabel := "Tutorial"
	if policy.HasPracticum {
		tutorialLabel = "Practicum"
	}
	fmt.Fprintf(b, "   %s %s │ Exam %s │ Final %s %s (%.2f) │ Credit points %s\n",
		tutorialLabel, row.TutorialScore, row.ExamScore, row.FinalScore,
		f.gradeStyle(row.GradePoint).Render(row.LetterGrade), row.GradePoint, row.CreditPoints)
	fmt.Fprintf(b, "   %s %3d%% %s\n", f.renderBar(row.Percent), row.Percent, f.styles.dim.Render(row.ProgressLabel))
	if row.ExamSchedule != "" {
		fmt.Fprintf(b, "   %s\n", f.styles.dim.Render("Exam at "+strings.Replace(row.ExamSchedule, "T", " ", 1)))
	}

	if !f.verbose {
		return
	}
	for _, m := range row.Details {
		line := fmt.Sprintf("     %-9s %-22s %6.2f / %-6.2f (%d counted)", m.Category, m.Name, m.Points, m.MaxPoints, m.Counted)
		if m.Note != "" {
			line += " " + m.Note
		}
		b.WriteString(f.styles.dim.Render(line))
		b.WriteString("\n")
	}
}

func (f *ConsoleFormatter) gradeStyle(point float64) lipgloss.Style {
	switch {
	case point >= 3:
		return f.styles.good
	case point >= 2:
		return f.styles.fair
	default:
		return f.styles.poor
	}
}

// renderBar draws a ten-cell bar for a percentage.
func (f *ConsoleFormatter) renderBar(percent int) string {
	const barWidth = 10
	percent = max(0, min(100, percent))
	filled := percent * barWidth / 100
	if percent > 0 && filled == 0 {
		filled = 1
	}

	style := f.styles.good
	switch {
	case percent < 40:
		style = f.styles.poor
	case percent < 75:
		style = f.styles.fair
	}
	return style.Render(strings.Repeat("█", filled)) + f.styles.dim.Render(strings.Repeat("░", barWidth-filled))
}
