package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/format"
	"github.com/dotcommander/uttrack/internal/links"
	"github.com/dotcommander/uttrack/internal/store"
)

var (
	fmtCheck bool
	fmtDiff  bool
)

// fmtKeys are the blobs fmt rewrites, in order.
var fmtKeys = []string{store.CoursesKey, links.Key}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite stored data in canonical form",
	Long: `Rewrite the stored course and bookmark data in canonical form.

Course records written by older versions use legacy field names and lists
of the wrong length; fmt normalizes every record, pads its lists and writes
the collection back with the current field names. Bookmarks without an id
or address are dropped.

USAGE MODES:

  uttrack fmt            # Rewrite in place
  uttrack fmt --diff     # Show what would change
  uttrack fmt --check    # Exit 1 if anything would change (for CI)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFmt(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit 1 if stored data would change (for CI)")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show diff of what would change")
}

func runFmt() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	write := !fmtCheck && !fmtDiff
	if write {
		if err := a.writable(); err != nil {
			return err
		}
	}

	var needsFormatting []string
	for _, key := range fmtKeys {
		content, err := a.kv.Get(key)
		if errors.Is(err, store.ErrNotFound) {
			if verbose {
				fmt.Fprintf(stdout, "%s not stored yet\n", key)
			}
			continue
		}
		if err != nil {
			return err
		}

		formatter, err := format.NewFormatter(key)
		if err != nil {
			return err
		}
		formatted, err := formatter.Format(content)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", key, err)
		}

		if string(content) == string(formatted) {
			if verbose {
				fmt.Fprintf(stdout, "%s already formatted\n", key)
			}
			continue
		}
		needsFormatting = append(needsFormatting, key)

		switch {
		case fmtCheck:
			a.printf("%s needs formatting\n", key)
		case fmtDiff:
			fmt.Fprint(stdout, format.Diff(string(content), string(formatted), a.kv.Path(key)))
		default:
			if err := a.kv.Set(key, formatted); err != nil {
				return fmt.Errorf("error writing %s: %w", key, err)
			}
			a.printf("Formatted %s\n", key)
		}
	}

	if len(needsFormatting) == 0 {
		a.printf("All stored data already formatted\n")
	}

	// Check mode: exit 1 if anything needs formatting
	if fmtCheck && len(needsFormatting) > 0 {
		exitFunc(1)
	}

	return nil
}
