package scoring

import "github.com/dotcommander/uttrack/internal/course"

// Policy says which activity categories a scheme tracks.
type Policy struct {
	HasTutorial  bool
	HasPracticum bool
	HasFinalExam bool
}

var schemeLabels = map[course.Scheme]string{
	course.SchemeTuton:        "Tutorial Online",
	course.SchemeTuweb:        "Tutorial Webinar",
	course.SchemeTTM:          "Tutorial Tatap Muka",
	course.SchemeBerpraktik:   "Berpraktik",
	course.SchemeBerpraktikum: "Berpraktikum",
	course.SchemePraktik:      "Praktik",
	course.SchemePraktikum:    "Praktikum",
	course.SchemeHanyaUAS:     "Hanya UAS",
}

// PolicyFor classifies a scheme. Unrecognized schemes are exam-only.
func PolicyFor(s course.Scheme) Policy {
	switch s {
	case course.SchemeTuton, course.SchemeTuweb, course.SchemeTTM:
		return Policy{HasTutorial: true, HasFinalExam: true}
	case course.SchemeBerpraktik, course.SchemeBerpraktikum:
		return Policy{HasPracticum: true, HasFinalExam: true}
	case course.SchemePraktik, course.SchemePraktikum:
		return Policy{HasPracticum: true}
	default:
		return Policy{HasFinalExam: true}
	}
}

// Combine weighs category scores into the final score for scheme s.
func Combine(s course.Scheme, tutorial, practicum, exam float64) float64 {
	switch s {
	case course.SchemeTuton:
		return tutorial*0.3 + exam*0.7
	case course.SchemeTuweb, course.SchemeTTM:
		return tutorial*0.5 + exam*0.5
	case course.SchemeBerpraktik, course.SchemeBerpraktikum:
		return practicum*0.6 + exam*0.4
	case course.SchemePraktik, course.SchemePraktikum:
		return practicum
	default:
		return exam
	}
}

// SchemeLabel returns the display name of a scheme, or the raw identifier
// for unknown ones.
func SchemeLabel(s course.Scheme) string {
	if label, ok := schemeLabels[s]; ok {
		return label
	}
	return string(s)
}
