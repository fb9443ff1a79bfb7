package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/uttrack/internal/course"
	"github.com/dotcommander/uttrack/internal/discovery"
	"github.com/dotcommander/uttrack/internal/rawfile"
)

var (
	importRoot   string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import <file-or-pattern>...",
	Short: "Import courses from JSON, YAML or Markdown files",
	Long: `Import course records from JSON, YAML or Markdown files and append them
to the collection.

Each argument is a file path or a doublestar pattern evaluated relative to
--root. A file holds either one course record or a list of them. Records
written by older versions (sks, presensi, diskusi, praktik, uas, ...) are
normalized on the way in. A Markdown note contributes the one course
described in its YAML frontmatter.

Examples:
  uttrack import backup.json
  uttrack import "semester-*/**/*.yaml" --root ~/kuliah
  uttrack import "**/*.json" --dry-run
  uttrack import "catatan/*.md"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importRoot, "root", ".", "Directory patterns are evaluated from")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without saving")
}

func runImport(args []string) error {
	files, err := collectImportFiles(args, importRoot)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no importable files match %v", args)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if !importDryRun {
		if err := a.writable(); err != nil {
			return err
		}
	}
	s, err := a.loadState()
	if err != nil {
		return err
	}

	imported := 0
	for _, f := range files {
		records, err := rawfile.DecodeRecords(f)
		if err != nil {
			return err
		}
		for _, rec := range records {
			c := course.Normalize(rec)
			s.Courses = append(s.Courses, c)
			imported++
			if verbose || importDryRun {
				a.printf("  %s: %s [%s, %d SKS]\n", f.RelPath, c.Name, c.Scheme, c.CreditUnits)
			}
		}
		a.logger.Debug("Imported file", zap.String("path", f.Path), zap.Int("records", len(records)))
	}

	if importDryRun {
		a.printf("Would import %d %s from %d %s\n",
			imported, pluralize("course", imported), len(files), pluralize("file", len(files)))
		return nil
	}
	if err := a.saveState(s); err != nil {
		return err
	}
	a.printf("Imported %d %s from %d %s\n",
		imported, pluralize("course", imported), len(files), pluralize("file", len(files)))
	return nil
}

// collectImportFiles resolves each argument as an existing file or, failing
// that, as a pattern under root. A file matched twice is read once.
func collectImportFiles(args []string, root string) ([]discovery.File, error) {
	seen := make(map[string]bool)
	var files []discovery.File
	add := func(f discovery.File) {
		key, err := filepath.Abs(f.Path)
		if err != nil {
			key = f.Path
		}
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, f)
	}

	fd := discovery.NewFileDiscovery(root)
	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			f, err := discovery.ReadFile(arg)
			if err != nil {
				return nil, err
			}
			add(f)
			continue
		}

		matches, err := fd.DiscoverFiles(arg)
		if err != nil {
			return nil, err
		}
		for _, f := range matches {
			add(f)
		}
	}
	return files, nil
}
