package scoring

import (
	"strconv"
	"strings"

	"github.com/dotcommander/uttrack/internal/course"
)

// Aggregate computes the category scores of a course.
//
// The tutorial score is the sum of the attendance (20), discussion (30) and
// assignment (50) components. When a scheme tracks practicum but not
// tutorial, the practicum average is also reported as the tutorial score.
func Aggregate(c course.Course) CategoryScores {
	scores, _ := aggregate(c)
	return scores
}

func aggregate(c course.Course) (CategoryScores, []Metric) {
	var scores CategoryScores
	var details []Metric
	policy := PolicyFor(c.Scheme)

	if policy.HasTutorial {
		tutorial, tutorialDetails := tutorialScore(c.Tutorial)
		scores.Tutorial = tutorial
		details = append(details, tutorialDetails...)
	}

	if policy.HasPracticum {
		items := make([]scoredItem, course.PracticumTasks)
		for i := range items {
			items[i] = scoredItem{done: c.Practicum.Status[i], score: c.Practicum.Score[i]}
		}
		avg, counted := averageCompleted(items, nonNegative)
		scores.Practicum = avg
		if !policy.HasTutorial {
			scores.Tutorial = avg
		}
		details = append(details, Metric{
			Category:  "practicum",
			Name:      "Practicum tasks",
			Points:    avg,
			MaxPoints: 100,
			Counted:   counted,
		})
	}

	scores.Exam = examScore(c.FinalExam.Target)
	if policy.HasFinalExam {
		details = append(details, Metric{
			Category:  "exam",
			Name:      "Final exam",
			Points:    scores.Exam,
			MaxPoints: 100,
			Counted:   boolToInt(c.FinalExam.Target != ""),
		})
	}

	return scores, details
}

func tutorialScore(t course.Tutorial) (float64, []Metric) {
	var attended float64
	for _, present := range t.Attendance {
		if present {
			attended += 100
		}
	}
	attendance := weighted(attended/course.TutorialSessions, AttendanceWeight)

	discussions := make([]scoredItem, course.TutorialSessions)
	for i := range discussions {
		discussions[i] = scoredItem{done: t.DiscussionStatus[i], score: t.DiscussionScore[i]}
	}
	discussionAvg, discussed := averageCompleted(discussions, positive)
	discussion := weighted(discussionAvg, DiscussionWeight)

	assignments := make([]scoredItem, course.TutorialTasks)
	for i := range assignments {
		assignments[i] = scoredItem{done: t.AssignmentStatus[i], score: t.AssignmentScore[i]}
	}
	assignmentAvg, submitted := averageCompleted(assignments, nonNegative)
	assignment := weighted(assignmentAvg, AssignmentWeight)

	details := []Metric{
		{Category: "tutorial", Name: "Attendance", Points: attendance, MaxPoints: AttendanceWeight, Counted: int(attended / 100)},
		{Category: "tutorial", Name: "Discussion", Points: discussion, MaxPoints: DiscussionWeight, Counted: discussed},
		{Category: "tutorial", Name: "Assignments", Points: assignment, MaxPoints: AssignmentWeight, Counted: submitted, Note: assignmentSessions()},
	}
	return attendance + discussion + assignment, details
}

// assignmentSessions names the tutorial sessions assignments are handed in,
// e.g. "(sessions 3, 5, 7)".
func assignmentSessions() string {
	sessions := make([]string, course.TutorialTasks)
	for i := range sessions {
		sessions[i] = strconv.Itoa(course.AssignmentSession(i))
	}
	return "(sessions " + strings.Join(sessions, ", ") + ")"
}

// examScore parses the exam target. Invalid or negative targets count as 0.
func examScore(target string) float64 {
	v, ok := course.ParseScore(target)
	if !ok || v < 0 {
		return 0
	}
	return course.ClampScore(v)
}
