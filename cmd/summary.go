package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/output"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the semester summary across all courses",
	Long: `Aggregates every tracked course into the semester summary: total credit
units, GPA, overall progress, how many courses are completed, ongoing or not
started, and the highest, lowest and average final scores.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	courses, err := a.courses.Load()
	if err != nil {
		return fmt.Errorf("error loading courses: %w", err)
	}

	r := output.BuildReport(courses, []int{})
	r.SummaryOnly = true
	return a.render(r)
}
