package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/output"
)

var (
	dataDir      string
	quiet        bool
	verbose      bool
	noColor      bool
	outputFormat string
	outputFile   string

	// exitFunc and stdout are swapped out by tests.
	exitFunc           = os.Exit
	stdout   io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "uttrack",
	Short: "Track tutorial, practicum and exam progress for distance-learning courses",
	Long: `uttrack keeps a per-course record of tutorial attendance, discussion and
assignment scores, practicum tasks, and final exam preparation, and computes
the final score, letter grade, credit points and GPA from it.

Run without a subcommand to show the report for every tracked course.
Data lives in the nearest .uttrack directory above the working directory,
or in ~/.uttrack when there is none.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory (auto-detected if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored console output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Report format (console|compact|json|markdown|csv|yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
}

func runReport() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	courses, err := a.courses.Load()
	if err != nil {
		return fmt.Errorf("error loading courses: %w", err)
	}
	return a.render(output.BuildReport(courses, nil))
}
