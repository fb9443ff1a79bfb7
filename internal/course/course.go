// Package course holds the course record tracked by uttrack and the total
// functions that repair and edit it.
//
// Every fixed-size sub-record is a Go array, so the nominal lengths are
// enforced by the type. Only the module list varies, with its length derived
// from the credit units.
package course

// Fixed record sizes.
const (
	ModulesPerCreditUnit = 3
	TutorialSessions     = 8
	TutorialTasks        = 3
	PracticumTasks       = 3

	// MaxCreditUnits bounds the credit units of a course. Larger stored
	// values are clamped to it; edits beyond it are rejected.
	MaxCreditUnits = 24
)

// Scheme identifies the grading track a course follows.
type Scheme string

// Known schemes. Any other value is treated as exam-only.
const (
	SchemeTuton        Scheme = "Tuton"
	SchemeTuweb        Scheme = "Tuweb"
	SchemeTTM          Scheme = "TTM"
	SchemeBerpraktik   Scheme = "Berpraktik"
	SchemeBerpraktikum Scheme = "Berpraktikum"
	SchemePraktik      Scheme = "Praktik"
	SchemePraktikum    Scheme = "Praktikum"
	SchemeHanyaUAS     Scheme = "Hanya UAS"
)

// DefaultScheme is used when a record carries no scheme at all.
const DefaultScheme = SchemeTuton

// Schemes lists the known schemes in display order.
var Schemes = []Scheme{
	SchemeTuton,
	SchemeTuweb,
	SchemeTTM,
	SchemeBerpraktik,
	SchemeBerpraktikum,
	SchemePraktik,
	SchemePraktikum,
	SchemeHanyaUAS,
}

// IsKnown reports whether s is one of the known schemes.
func (s Scheme) IsKnown() bool {
	for _, known := range Schemes {
		if s == known {
			return true
		}
	}
	return false
}

// Course is one tracked course.
type Course struct {
	Name        string    `json:"name" yaml:"name"`
	CreditUnits int       `json:"creditUnits" yaml:"creditUnits"`
	Scheme      Scheme    `json:"scheme" yaml:"scheme"`
	Tutorial    Tutorial  `json:"tutorial" yaml:"tutorial"`
	Practicum   Practicum `json:"practicum" yaml:"practicum"`
	FinalExam   FinalExam `json:"finalExam" yaml:"finalExam"`
}

// Tutorial holds the per-session and per-assignment tutorial records.
type Tutorial struct {
	Attendance       [TutorialSessions]bool   `json:"attendance" yaml:"attendance"`
	DiscussionScore  [TutorialSessions]string `json:"discussionScore" yaml:"discussionScore"`
	DiscussionStatus [TutorialSessions]bool   `json:"discussionStatus" yaml:"discussionStatus"`
	AssignmentStatus [TutorialTasks]bool      `json:"assignmentStatus" yaml:"assignmentStatus"`
	AssignmentScore  [TutorialTasks]string    `json:"assignmentScore" yaml:"assignmentScore"`
	DiscussionNote   [TutorialSessions]string `json:"discussionNote" yaml:"discussionNote"`
}

// Practicum holds the three practicum tasks.
type Practicum struct {
	Description [PracticumTasks]string `json:"description" yaml:"description"`
	Status      [PracticumTasks]bool   `json:"status" yaml:"status"`
	Score       [PracticumTasks]string `json:"score" yaml:"score"`
}

// FinalExam holds the exam schedule, the known or targeted exam score and
// the module review checklist.
type FinalExam struct {
	Schedule string `json:"schedule" yaml:"schedule"`
	Target   string `json:"target" yaml:"target"`
	Modules  []bool `json:"modules" yaml:"modules"`
}

// New returns a course with empty sub-records and a module list sized from
// creditUnits.
func New(name string, creditUnits int, scheme Scheme) Course {
	if creditUnits < 0 {
		creditUnits = 0
	}
	return Course{
		Name:        name,
		CreditUnits: creditUnits,
		Scheme:      scheme,
		FinalExam: FinalExam{
			Modules: make([]bool, ModuleCount(creditUnits)),
		},
	}
}

// ModuleCount returns the expected number of review modules. Missing or
// non-positive credit units count as one; more than MaxCreditUnits count as
// MaxCreditUnits.
func ModuleCount(creditUnits int) int {
	creditUnits = min(max(creditUnits, 1), MaxCreditUnits)
	return creditUnits * ModulesPerCreditUnit
}

// ResizeModules pads or truncates flags to n, keeping existing flags by
// position.
func ResizeModules(flags []bool, n int) []bool {
	out := make([]bool, n)
	copy(out, flags)
	return out
}

// AssignmentSession returns the tutorial session an assignment is handed in
// at. It is presentational only.
func AssignmentSession(task int) int {
	switch task {
	case 0:
		return 3
	case 1:
		return 5
	default:
		return 7
	}
}

// Clone returns a deep copy of c.
func (c Course) Clone() Course {
	out := c
	if c.FinalExam.Modules != nil {
		out.FinalExam.Modules = append([]bool(nil), c.FinalExam.Modules...)
	}
	return out
}
