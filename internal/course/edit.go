package course

import (
	"errors"
	"fmt"
	"strings"
)

// Edit errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidValue    = errors.New("invalid value")
)

// Edit is a single-field change to a course. The set of edits is closed:
// only the types in this file implement it.
type Edit interface {
	isEdit()
}

type (
	// ToggleAttendance flips the attendance flag of a tutorial session.
	ToggleAttendance struct{ Session int }
	// SetDiscussionScore sets a session's discussion score. A valid score
	// marks the discussion complete; an empty or invalid one clears both.
	SetDiscussionScore struct {
		Session int
		Value   string
	}
	// ToggleDiscussionStatus flips a session's discussion flag. Clearing the
	// flag clears the score.
	ToggleDiscussionStatus struct{ Session int }
	// SetDiscussionNote replaces the free-text note of a tutorial session.
	SetDiscussionNote struct {
		Session int
		Note    string
	}
	// ToggleAssignmentStatus flips the submitted flag of a tutorial assignment.
	ToggleAssignmentStatus struct{ Task int }
	// SetAssignmentScore sets the score of a tutorial assignment.
	SetAssignmentScore struct {
		Task  int
		Value string
	}
	// SetPracticumDescription replaces the description of a practicum task.
	SetPracticumDescription struct {
		Task        int
		Description string
	}
	// TogglePracticumStatus flips the submitted flag of a practicum task.
	TogglePracticumStatus struct{ Task int }
	// SetPracticumScore sets the score of a practicum task.
	SetPracticumScore struct {
		Task  int
		Value string
	}
	// SetExamSchedule stores the sanitized schedule; unparseable input
	// clears it.
	SetExamSchedule struct{ Value string }
	// SetExamTarget sets the target final exam score.
	SetExamTarget struct{ Value string }
	// ToggleModule flips the reviewed flag of a final exam module.
	ToggleModule struct{ Module int }
	// SetName renames the course. The name must not be blank.
	SetName struct{ Name string }
	// SetCreditUnits resizes the module checklist, keeping existing flags by
	// position.
	SetCreditUnits struct{ Value string }
	// SetScheme changes the assessment scheme to one of Schemes.
	SetScheme struct{ Scheme Scheme }
)

func (ToggleAttendance) isEdit()        {}
func (SetDiscussionScore) isEdit()      {}
func (ToggleDiscussionStatus) isEdit()  {}
func (SetDiscussionNote) isEdit()       {}
func (ToggleAssignmentStatus) isEdit()  {}
func (SetAssignmentScore) isEdit()      {}
func (SetPracticumDescription) isEdit() {}
func (TogglePracticumStatus) isEdit()   {}
func (SetPracticumScore) isEdit()       {}
func (SetExamSchedule) isEdit()         {}
func (SetExamTarget) isEdit()           {}
func (ToggleModule) isEdit()            {}
func (SetName) isEdit()                 {}
func (SetCreditUnits) isEdit()          {}
func (SetScheme) isEdit()               {}

// Apply returns c with e applied. On error c is returned unchanged.
func Apply(c Course, e Edit) (Course, error) {
	out := c.Clone()

	switch e := e.(type) {
	case ToggleAttendance:
		if err := checkIndex("attendance session", e.Session, TutorialSessions); err != nil {
			return c, err
		}
		out.Tutorial.Attendance[e.Session] = !out.Tutorial.Attendance[e.Session]

	case SetDiscussionScore:
		if err := checkIndex("discussion session", e.Session, TutorialSessions); err != nil {
			return c, err
		}
		score := DiscussionValue(e.Value)
		out.Tutorial.DiscussionScore[e.Session] = score
		out.Tutorial.DiscussionStatus[e.Session] = score != ""

	case ToggleDiscussionStatus:
		if err := checkIndex("discussion session", e.Session, TutorialSessions); err != nil {
			return c, err
		}
		next := !out.Tutorial.DiscussionStatus[e.Session]
		out.Tutorial.DiscussionStatus[e.Session] = next
		if !next {
			out.Tutorial.DiscussionScore[e.Session] = ""
		}

	case SetDiscussionNote:
		if err := checkIndex("discussion session", e.Session, TutorialSessions); err != nil {
			return c, err
		}
		out.Tutorial.DiscussionNote[e.Session] = e.Note

	case ToggleAssignmentStatus:
		if err := checkIndex("assignment", e.Task, TutorialTasks); err != nil {
			return c, err
		}
		out.Tutorial.AssignmentStatus[e.Task] = !out.Tutorial.AssignmentStatus[e.Task]

	case SetAssignmentScore:
		if err := checkIndex("assignment", e.Task, TutorialTasks); err != nil {
			return c, err
		}
		out.Tutorial.AssignmentScore[e.Task] = strings.TrimSpace(e.Value)

	case SetPracticumDescription:
		if err := checkIndex("practicum task", e.Task, PracticumTasks); err != nil {
			return c, err
		}
		out.Practicum.Description[e.Task] = e.Description

	case TogglePracticumStatus:
		if err := checkIndex("practicum task", e.Task, PracticumTasks); err != nil {
			return c, err
		}
		out.Practicum.Status[e.Task] = !out.Practicum.Status[e.Task]

	case SetPracticumScore:
		if err := checkIndex("practicum task", e.Task, PracticumTasks); err != nil {
			return c, err
		}
		out.Practicum.Score[e.Task] = strings.TrimSpace(e.Value)

	case SetExamSchedule:
		out.FinalExam.Schedule = SanitizeSchedule(e.Value)

	case SetExamTarget:
		out.FinalExam.Target = strings.TrimSpace(e.Value)

	case ToggleModule:
		if err := checkIndex("module", e.Module, len(out.FinalExam.Modules)); err != nil {
			return c, err
		}
		out.FinalExam.Modules[e.Module] = !out.FinalExam.Modules[e.Module]

	case SetName:
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return c, fmt.Errorf("name must not be empty: %w", ErrInvalidValue)
		}
		out.Name = name

	case SetCreditUnits:
		n, ok := ParseCreditUnits(e.Value)
		if !ok || !ValidCreditUnits(n) {
			return c, fmt.Errorf("credit units %q must be 0-%d: %w", e.Value, MaxCreditUnits, ErrInvalidValue)
		}
		out.CreditUnits = n
		out.FinalExam.Modules = ResizeModules(out.FinalExam.Modules, ModuleCount(n))

	case SetScheme:
		if strings.TrimSpace(string(e.Scheme)) == "" {
			return c, fmt.Errorf("scheme must not be empty: %w", ErrInvalidValue)
		}
		if !e.Scheme.IsKnown() {
			return c, fmt.Errorf("unknown scheme %q: %w", e.Scheme, ErrInvalidValue)
		}
		out.Scheme = e.Scheme

	default:
		return c, fmt.Errorf("unsupported edit %T", e)
	}

	return out, nil
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s %d (have %d): %w", what, i+1, n, ErrIndexOutOfRange)
	}
	return nil
}
