package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/scoring"
)

// Tool is the report producer name.
const Tool = "uttrack"

// Formatter renders a report.
type Formatter interface {
	Format(r *Report) error
}

// Report is everything a formatter renders: the summary over the whole
// collection and one row per visible course.
type Report struct {
	GeneratedAt time.Time       `json:"generatedAt" yaml:"generatedAt"`
	DataDir     string          `json:"dataDir,omitempty" yaml:"dataDir,omitempty"`
	Filter      string          `json:"filter,omitempty" yaml:"filter,omitempty"`
	Summary     scoring.Summary `json:"summary" yaml:"summary"`
	Courses     []CourseRow     `json:"courses" yaml:"courses"`

	// SummaryOnly asks text formatters to skip the per-course section.
	SummaryOnly bool `json:"-" yaml:"-"`
}

// CourseRow is the computed view of one course.
type CourseRow struct {
	Number        int              `json:"number" yaml:"number" csv:"number"`
	Name          string           `json:"name" yaml:"name" csv:"name"`
	Scheme        string           `json:"scheme" yaml:"scheme" csv:"scheme"`
	SchemeLabel   string           `json:"schemeLabel" yaml:"schemeLabel" csv:"scheme_label"`
	CreditUnits   int              `json:"creditUnits" yaml:"creditUnits" csv:"credit_units"`
	TutorialScore string           `json:"tutorialScore" yaml:"tutorialScore" csv:"tutorial_score"`
	ExamScore     string           `json:"examScore" yaml:"examScore" csv:"exam_score"`
	FinalScore    string           `json:"finalScore" yaml:"finalScore" csv:"final_score"`
	LetterGrade   string           `json:"letterGrade" yaml:"letterGrade" csv:"letter_grade"`
	GradePoint    float64          `json:"gradePoint" yaml:"gradePoint" csv:"grade_point"`
	CreditPoints  string           `json:"creditPoints" yaml:"creditPoints" csv:"credit_points"`
	ExamSchedule  string           `json:"examSchedule,omitempty" yaml:"examSchedule,omitempty" csv:"exam_schedule"`
	Completed     int              `json:"completed" yaml:"completed" csv:"completed"`
	Total         int              `json:"total" yaml:"total" csv:"total"`
	Percent       int              `json:"percent" yaml:"percent" csv:"percent"`
	ProgressLabel string           `json:"progressLabel" yaml:"progressLabel" csv:"progress"`
	Details       []scoring.Metric `json:"details,omitempty" yaml:"details,omitempty" csv:"-"`
}

// BuildReport computes the report for courses. visible selects the rows by
// index; nil means every course. The summary always covers the whole
// collection.
func BuildReport(courses []course.Course, visible []int) *Report {
	if visible == nil {
		visible = make([]int, len(courses))
		for i := range courses {
			visible[i] = i
		}
	}

	r := &Report{
		GeneratedAt: time.Now(),
		Summary:     scoring.Summarize(courses),
		Courses:     make([]CourseRow, 0, len(visible)),
	}
	for _, i := range visible {
		if i < 0 || i >= len(courses) {
			continue
		}
		r.Courses = append(r.Courses, NewCourseRow(i, courses[i]))
	}
	return r
}

// NewCourseRow computes the row of the course at index i.
func NewCourseRow(i int, c course.Course) CourseRow {
	res := scoring.FinalResult(c)
	p := scoring.ProgressFor(c)
	return CourseRow{
		Number:        i + 1,
		Name:          c.Name,
		Scheme:        string(c.Scheme),
		SchemeLabel:   scoring.SchemeLabel(c.Scheme),
		CreditUnits:   c.CreditUnits,
		TutorialScore: res.TutorialScore,
		ExamScore:     res.ExamScore,
		FinalScore:    res.FinalScore,
		LetterGrade:   res.LetterGrade,
		GradePoint:    res.GradePoint,
		CreditPoints:  res.CreditPoints,
		ExamSchedule:  c.FinalExam.Schedule,
		Completed:     p.Completed,
		Total:         p.Total,
		Percent:       p.Percent,
		ProgressLabel: p.Label,
		Details:       res.Details,
	}
}

// emit writes data to outputFile, or to w when no file is set.
func emit(w io.Writer, outputFile string, data []byte) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	if w == nil {
		w = os.Stdout
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
