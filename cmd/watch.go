package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/output"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the report whenever the stored courses change",
	Long: `Show the report, then show it again every time the stored collection
changes, for instance when another uttrack process edits a course. The last
writer wins: each change reloads the whole collection. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runWatch(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	courses, err := a.courses.Load()
	if err != nil {
		return fmt.Errorf("error loading courses: %w", err)
	}
	if err := a.render(output.BuildReport(courses, nil)); err != nil {
		return err
	}

	return a.courses.Watch(ctx, func(courses []course.Course) {
		fmt.Fprintln(stdout)
		if err := a.render(output.BuildReport(courses, nil)); err != nil {
			a.logger.Error("Failed to render report", zap.Error(err))
		}
	})
}
