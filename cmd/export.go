package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/uttrack/internal/links"
	"github.com/dotcommander/uttrack/internal/store"
)

var (
	exportAs    string
	exportLinks bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored courses as JSON or YAML",
	Long: `Export the normalized course collection, or the bookmark list with --links,
in a form 'uttrack import' reads back. Unlike the report formats, the export
holds the raw records rather than computed scores.

Examples:
  uttrack export > backup.json
  uttrack export --as yaml -o courses.yaml
  uttrack export --links`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(exportAs, exportLinks); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportAs, "as", "json", "Export encoding (json|yaml)")
	exportCmd.Flags().BoolVar(&exportLinks, "links", false, "Export the bookmark list instead of the courses")
}

func runExport(as string, bookmarks bool) error {
	if as != "json" && as != "yaml" {
		return fmt.Errorf("invalid export encoding: %s. Must be json or yaml", as)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	// JSON keeps the stored form of each list; YAML mirrors its field names.
	var value any
	var encodeJSON func() ([]byte, error)
	if bookmarks {
		list, err := a.links.Load()
		if err != nil {
			return fmt.Errorf("error loading bookmarks: %w", err)
		}
		value = list
		encodeJSON = func() ([]byte, error) { return links.Encode(list) }
	} else {
		courses, err := a.courses.Load()
		if err != nil {
			return fmt.Errorf("error loading courses: %w", err)
		}
		value = courses
		encodeJSON = func() ([]byte, error) { return store.EncodeCourses(courses) }
	}

	var data []byte
	if as == "yaml" {
		data, err = encodeYAML(value)
	} else {
		data, err = encodeJSON()
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}

	if a.cfg.Output != "" {
		if err := os.WriteFile(a.cfg.Output, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", a.cfg.Output, err)
		}
		return nil
	}
	_, err = stdout.Write(data)
	return err
}

func encodeYAML(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("error encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}
