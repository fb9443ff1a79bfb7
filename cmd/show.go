package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/output"
	"github.com/dotcommander/uttrack/internal/tracker"
)

var showScheme string

var showCmd = &cobra.Command{
	Use:   "show [number]",
	Short: "Show the report for one course or one scheme",
	Long: `Show the computed report for the selected courses. With a course number
only that course is shown; with --scheme only courses following that scheme.
The semester summary always covers every course.

Examples:
  uttrack show 2
  uttrack show --scheme Tuton
  uttrack show 1 --format json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShow(args, showScheme); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showScheme, "scheme", "s", "", "Show only courses following this scheme")
}

func runShow(args []string, scheme string) error {
	if len(args) > 0 && scheme != "" {
		return fmt.Errorf("a course number and --scheme cannot be combined")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	s, err := a.loadState()
	if err != nil {
		return err
	}

	filter, err := selectCourses(s, args, scheme)
	if err != nil {
		return err
	}

	r := output.BuildReport(s.Courses, s.Visible())
	r.Filter = filter
	return a.render(r)
}

// selectCourses applies the command-line selection to s and describes it.
func selectCourses(s *tracker.State, args []string, scheme string) (string, error) {
	switch {
	case len(args) > 0:
		idx, err := parseNumber("course number", args[0])
		if err != nil {
			return "", err
		}
		if idx >= len(s.Courses) {
			return "", fmt.Errorf("course %d (have %d): %w", idx+1, len(s.Courses), course.ErrIndexOutOfRange)
		}
		s.SelectCourse(idx)
		return fmt.Sprintf("course %d", idx+1), nil
	case scheme != "":
		s.SelectCategory(course.Scheme(scheme))
		return "scheme " + scheme, nil
	default:
		s.ResetSelection()
		return "", nil
	}
}
