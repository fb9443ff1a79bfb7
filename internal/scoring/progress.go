package scoring

import (
	"fmt"
	"math"

	"github.com/dotcommander/uttrack/internal/course"
)

// NoActivityLabel is the progress label of a course with nothing to track.
const NoActivityLabel = "Belum ada aktivitas"

// ProgressFor counts the trackable activities of a course and how many are
// done. Every item weighs the same.
func ProgressFor(c course.Course) Progress {
	var completed, total int
	add := func(done bool) {
		total++
		completed += boolToInt(done)
	}

	policy := PolicyFor(c.Scheme)

	if policy.HasTutorial {
		for _, present := range c.Tutorial.Attendance {
			add(present)
		}
		for _, discussed := range c.Tutorial.DiscussionStatus {
			add(discussed)
		}
		for _, submitted := range c.Tutorial.AssignmentStatus {
			add(submitted)
		}
	}

	if policy.HasPracticum {
		for _, done := range c.Practicum.Status {
			add(done)
		}
	}

	if policy.HasFinalExam {
		add(c.FinalExam.Schedule != "")
		add(c.FinalExam.Target != "")
		for _, reviewed := range c.FinalExam.Modules {
			add(reviewed)
		}
	}

	return newProgress(completed, total)
}

func newProgress(completed, total int) Progress {
	if total == 0 {
		return Progress{Label: NoActivityLabel}
	}
	return Progress{
		Completed: completed,
		Total:     total,
		Percent:   percentOf(completed, total),
		Label:     fmt.Sprintf("%d dari %d aktivitas", completed, total),
	}
}

// percentOf rounds completed/total to a whole percent in [0,100].
func percentOf(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	return min(100, max(0, p))
}
