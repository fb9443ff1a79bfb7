package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/tracker"
)

var addScheme string

var addCmd = &cobra.Command{
	Use:   "add <name> <credit-units>",
	Short: "Add a course",
	Long: `Add a course with a name, a credit-unit (SKS) count and a delivery scheme.

The scheme decides how the final score is computed:
  Tuton, Tuweb          tutorial 30% and exam 70%
  TTM                   tutorial 50% and exam 50%
  Berpraktik, Praktik,
  Berpraktikum,
  Praktikum             practicum tasks 50% and exam 50%
  Hanya UAS             exam only

Examples:
  uttrack add "Pengantar Statistika" 3
  uttrack add "Praktikum Fisika" 2 --scheme Praktikum`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAdd(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addScheme, "scheme", "s", string(course.DefaultScheme), "Delivery scheme")
}

func runAdd(name, creditUnits string) error {
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

	idx, err := s.AddCourse(tracker.NewCourse{Name: name, CreditUnits: creditUnits, Scheme: addScheme})
	if err != nil {
		return err
	}
	if err := a.saveState(s); err != nil {
		return err
	}

	a.printf("Added course %d: %s\n", idx+1, s.Courses[idx].Name)
	return nil
}
