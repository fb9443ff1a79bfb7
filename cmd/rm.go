package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <number>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a course",
	Long: `Delete the course with the given number, as shown in the report.

Example:
  uttrack rm 2`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRemove(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(arg string) error {
	idx, err := parseNumber("course number", arg)
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
	removed, err := s.DeleteCourse(idx)
	if err != nil {
		return err
	}
	if err := a.saveState(s); err != nil {
		return err
	}

	a.printf("Deleted course %d: %s\n", idx+1, removed.Name)
	return nil
}
