package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/course"
)

var setCmd = &cobra.Command{
	Use:   "set <number> <field> [item] [value...]",
	Short: "Edit one field of a course",
	Long: `Edit one field of a course. Session, task and module items are numbered
from 1. Toggles flip the current value; scores accept 0-100 and an empty
value clears them.

Fields:
  attendance <session>              toggle tutorial attendance (1-8)
  discussion <session> <score>      set a discussion score
  discussion-done <session>         toggle a discussion as done
  note <session> <text>             set a discussion note
  assignment-done <task>            toggle an assignment as done (1-3)
  assignment <task> <score>         set an assignment score
  practicum-desc <task> <text>      describe a practicum task (1-3)
  practicum-done <task>             toggle a practicum task as done
  practicum <task> <score>          set a practicum task score
  module <number>                   toggle an exam preparation module
  schedule <YYYY-MM-DDTHH:MM>       set the exam schedule
  target <score>                    set the exam target score
  name <text>                       rename the course
  sks <credit-units>                change the credit units
  scheme <scheme>                   change the delivery scheme

Examples:
  uttrack set 1 attendance 3
  uttrack set 1 discussion 2 85.5
  uttrack set 2 schedule 2025-01-12T07:30`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSet(args[0], args[1], args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(number, field string, rest []string) error {
	idx, err := parseNumber("course number", number)
	if err != nil {
		return err
	}
	edit, err := parseEdit(field, rest)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.writable(); err != nil {
		return err
	}
	s, err := a.loadState()
	if err != nil {
		return err
	}
	if err := s.Apply(idx, edit); err != nil {
		return err
	}
	if err := a.saveState(s); err != nil {
		return err
	}

	a.printf("Updated %s of course %d: %s\n", field, idx+1, s.Courses[idx].Name)
	return nil
}

// editParser builds an edit from the arguments following the field name.
type editParser func(args []string) (course.Edit, error)

var editParsers = map[string]editParser{
	"attendance": itemEdit("session", func(i int, _ string) course.Edit { return course.ToggleAttendance{Session: i} }),
	"discussion": itemValueEdit("session", func(i int, v string) course.Edit {
		return course.SetDiscussionScore{Session: i, Value: v}
	}),
	"discussion-done": itemEdit("session", func(i int, _ string) course.Edit { return course.ToggleDiscussionStatus{Session: i} }),
	"note": itemValueEdit("session", func(i int, v string) course.Edit {
		return course.SetDiscussionNote{Session: i, Note: v}
	}),
	"assignment-done": itemEdit("task", func(i int, _ string) course.Edit { return course.ToggleAssignmentStatus{Task: i} }),
	"assignment": itemValueEdit("task", func(i int, v string) course.Edit {
		return course.SetAssignmentScore{Task: i, Value: v}
	}),
	"practicum-desc": itemValueEdit("task", func(i int, v string) course.Edit {
		return course.SetPracticumDescription{Task: i, Description: v}
	}),
	"practicum-done": itemEdit("task", func(i int, _ string) course.Edit { return course.TogglePracticumStatus{Task: i} }),
	"practicum": itemValueEdit("task", func(i int, v string) course.Edit {
		return course.SetPracticumScore{Task: i, Value: v}
	}),
	"module":   itemEdit("module", func(i int, _ string) course.Edit { return course.ToggleModule{Module: i} }),
	"schedule": valueEdit(func(v string) course.Edit { return course.SetExamSchedule{Value: v} }),
	"target":   valueEdit(func(v string) course.Edit { return course.SetExamTarget{Value: v} }),
	"name":     valueEdit(func(v string) course.Edit { return course.SetName{Name: v} }),
	"sks":      valueEdit(func(v string) course.Edit { return course.SetCreditUnits{Value: v} }),
	"scheme":   valueEdit(func(v string) course.Edit { return course.SetScheme{Scheme: course.Scheme(v)} }),
}

// parseEdit maps a field name and its arguments to a course edit.
func parseEdit(field string, args []string) (course.Edit, error) {
	parse, ok := editParsers[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q (valid fields: %s)", field, strings.Join(editFields(), ", "))
	}
	return parse(args)
}

func editFields() []string {
	fields := make([]string, 0, len(editParsers))
	for f := range editParsers {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func itemEdit(what string, build func(int, string) course.Edit) editParser {
	return func(args []string) (course.Edit, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected a %s number", what)
		}
		i, err := parseNumber(what, args[0])
		if err != nil {
			return nil, err
		}
		return build(i, ""), nil
	}
}

// itemValueEdit takes an item number followed by a value. A missing value
// is the empty string, which clears scores.
func itemValueEdit(what string, build func(int, string) course.Edit) editParser {
	return func(args []string) (course.Edit, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("expected a %s number", what)
		}
		i, err := parseNumber(what, args[0])
		if err != nil {
			return nil, err
		}
		return build(i, strings.Join(args[1:], " ")), nil
	}
}

func valueEdit(build func(string) course.Edit) editParser {
	return func(args []string) (course.Edit, error) {
		return build(strings.Join(args, " ")), nil
	}
}
