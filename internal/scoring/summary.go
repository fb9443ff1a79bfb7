package scoring

import "github.com/dotcommander/uttrack/internal/course"

// Summary aggregates results and progress across all courses.
type Summary struct {
	Courses      int    `json:"courses" yaml:"courses"`
	CreditUnits  int    `json:"creditUnits" yaml:"creditUnits"`
	GPA          string `json:"gpa" yaml:"gpa"`
	OverallPct   int    `json:"overallPercent" yaml:"overallPercent"`
	ItemsTotal   int    `json:"itemsTotal" yaml:"itemsTotal"`
	ItemsDone    int    `json:"itemsCompleted" yaml:"itemsCompleted"`
	Completed    int    `json:"completedCourses" yaml:"completedCourses"`
	Ongoing      int    `json:"ongoingCourses" yaml:"ongoingCourses"`
	NotStarted   int    `json:"notStartedCourses" yaml:"notStartedCourses"`
	Active       int    `json:"activeCourses" yaml:"activeCourses"`
	HighestScore string `json:"highestScore" yaml:"highestScore"`
	LowestScore  string `json:"lowestScore" yaml:"lowestScore"`
	AverageScore string `json:"averageScore" yaml:"averageScore"`
	creditPoints float64
	scoreSum     float64
	scoreCount   int
	highest      float64
	lowest       float64
}

// Summarize folds every course into a Summary. The GPA only weighs courses
// with positive credit units.
func Summarize(courses []course.Course) Summary {
	s := Summary{Courses: len(courses)}

	for _, c := range courses {
		s.add(c)
	}

	s.GPA = "0.00"
	if s.CreditUnits > 0 {
		s.GPA = formatFixed(s.creditPoints / float64(s.CreditUnits))
	}
	s.OverallPct = 0
	if s.ItemsTotal > 0 {
		s.OverallPct = percentOf(s.ItemsDone, s.ItemsTotal)
	}

	s.HighestScore, s.LowestScore, s.AverageScore = Placeholder, Placeholder, Placeholder
	if s.scoreCount > 0 {
		s.HighestScore = formatFixed(s.highest)
		s.LowestScore = formatFixed(s.lowest)
		s.AverageScore = formatFixed(s.scoreSum / float64(s.scoreCount))
	}
	return s
}

func (s *Summary) add(c course.Course) {
	res := FinalResult(c)

	if c.CreditUnits > 0 {
		s.CreditUnits += c.CreditUnits
		s.creditPoints += round2(CreditPoints(c.CreditUnits, GradeFor(res.Final)))
	}

	final := round2(res.Final)
	if s.scoreCount == 0 {
		s.highest, s.lowest = final, final
	} else {
		s.highest = max(s.highest, final)
		s.lowest = min(s.lowest, final)
	}
	s.scoreSum += final
	s.scoreCount++

	p := ProgressFor(c)
	s.ItemsTotal += p.Total
	s.ItemsDone += p.Completed

	switch {
	case p.Total == 0 || p.Completed == 0:
		s.NotStarted++
	case p.Completed == p.Total:
		s.Completed++
	default:
		s.Ongoing++
	}
	if p.Completed > 0 {
		s.Active++
	}
}
