// Package tracker holds the in-memory course collection together with the
// current selection, and exposes the mutations the CLI performs on it.
package tracker

import (
	"fmt"

	"github.com/dotcommander/uttrack/internal/course"
)

// Selection narrows which courses are visible. At most one of Course and
// Category is set.
type Selection struct {
	Course   *int
	Category course.Scheme
}

// State is the application state: the course collection and the selection.
type State struct {
	Courses   []course.Course
	Selection Selection
}

// New returns a state over courses with nothing selected.
func New(courses []course.Course) *State {
	if courses == nil {
		courses = []course.Course{}
	}
	return &State{Courses: courses}
}

// AddCourse validates input, appends the new course and selects it.
func (s *State) AddCourse(input NewCourse) (int, error) {
	c, err := input.Build()
	if err != nil {
		return 0, err
	}
	s.Courses = append(s.Courses, c)
	idx := len(s.Courses) - 1
	s.SelectCourse(idx)
	return idx, nil
}

// DeleteCourse removes the course at i and keeps the selection pointing at
// the same course, or clears it when that course is gone.
func (s *State) DeleteCourse(i int) (course.Course, error) {
	if err := s.check(i); err != nil {
		return course.Course{}, err
	}
	removed := s.Courses[i]
	s.Courses = append(s.Courses[:i:i], s.Courses[i+1:]...)

	if sel := s.Selection.Course; sel != nil {
		switch {
		case *sel == i:
			s.Selection.Course = nil
		case *sel > i:
			next := *sel - 1
			s.Selection.Course = &next
		}
	}
	if s.Selection.Category != "" && !s.hasScheme(s.Selection.Category) {
		s.Selection.Category = ""
	}
	return removed, nil
}

// Apply applies an edit to the course at i. On error nothing changes.
func (s *State) Apply(i int, e course.Edit) error {
	if err := s.check(i); err != nil {
		return err
	}
	updated, err := course.Apply(s.Courses[i], e)
	if err != nil {
		return fmt.Errorf("course %d: %w", i+1, err)
	}
	s.Courses[i] = updated
	return nil
}

// SelectCourse shows only the course at i.
func (s *State) SelectCourse(i int) {
	s.Selection = Selection{Course: &i}
}

// SelectCategory shows only courses following scheme.
func (s *State) SelectCategory(scheme course.Scheme) {
	s.Selection = Selection{Category: scheme}
}

// ResetSelection shows every course.
func (s *State) ResetSelection() {
	s.Selection = Selection{}
}

// Visible returns the indexes of the courses the selection lets through.
func (s *State) Visible() []int {
	var out []int
	switch {
	case s.Selection.Category != "":
		for i, c := range s.Courses {
			if c.Scheme == s.Selection.Category {
				out = append(out, i)
			}
		}
	case s.Selection.Course != nil:
		if i := *s.Selection.Course; i >= 0 && i < len(s.Courses) {
			out = []int{i}
		}
	default:
		for i := range s.Courses {
			out = append(out, i)
		}
	}
	return out
}

// Categories returns the distinct schemes in first-seen order.
func (s *State) Categories() []course.Scheme {
	seen := make(map[course.Scheme]bool)
	var out []course.Scheme
	for _, c := range s.Courses {
		if !seen[c.Scheme] {
			seen[c.Scheme] = true
			out = append(out, c.Scheme)
		}
	}
	return out
}

func (s *State) hasScheme(scheme course.Scheme) bool {
	for _, c := range s.Courses {
		if c.Scheme == scheme {
			return true
		}
	}
	return false
}

func (s *State) check(i int) error {
	if i < 0 || i >= len(s.Courses) {
		return fmt.Errorf("course %d (have %d): %w", i+1, len(s.Courses), course.ErrIndexOutOfRange)
	}
	return nil
}
