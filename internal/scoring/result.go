package scoring

import "github.com/dotcommander/uttrack/internal/course"

// FinalResult computes the display-ready result of a course: category
// figures, final score, letter grade and credit points.
func FinalResult(c course.Course) Result {
	scores, details := aggregate(c)
	policy := PolicyFor(c.Scheme)

	final := Combine(c.Scheme, scores.Tutorial, scores.Practicum, scores.Exam)
	grade := GradeFor(final)

	tutorial := Placeholder
	if policy.HasTutorial || policy.HasPracticum {
		tutorial = formatFixed(scores.Tutorial)
	}
	exam := Placeholder
	if policy.HasFinalExam {
		exam = formatFixed(scores.Exam)
	}

	return Result{
		TutorialScore: tutorial,
		ExamScore:     exam,
		FinalScore:    formatFixed(final),
		LetterGrade:   grade.Letter,
		GradePoint:    grade.Point,
		CreditPoints:  formatFixed(CreditPoints(c.CreditUnits, grade)),
		Final:         final,
		Details:       details,
	}
}

// CreditPoints is the grade-point contribution of a course.
func CreditPoints(creditUnits int, g Grade) float64 {
	if creditUnits < 0 {
		creditUnits = 0
	}
	return float64(creditUnits) * g.Point
}
