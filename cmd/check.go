package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/baseline"
	"github.com/dotcommander/uttrack/internal/cue"
	"github.com/dotcommander/uttrack/internal/discovery"
	"github.com/dotcommander/uttrack/internal/rawfile"
	"github.com/dotcommander/uttrack/internal/store"
)

var (
	baselinePath      string
	writeBaselinePath string
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check course data against the canonical schema",
	Long: `Check course records against the canonical schema without changing them.

Without arguments the stored collection is checked. With file arguments each
JSON or YAML file is checked instead, which is useful before an import.
Records that fail the check still load: missing or malformed fields take
their defaults. Run 'uttrack fmt' to rewrite the stored data canonically.

Known deviations can be accepted with a baseline:
  uttrack check --write-baseline .uttrackbaseline.json
  uttrack check --baseline .uttrackbaseline.json

Exits 1 when any record deviates.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		issues, err := runCheck(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
			return
		}
		if issues > 0 {
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&baselinePath, "baseline", "", "Ignore deviations recorded in this baseline file")
	checkCmd.Flags().StringVar(&writeBaselinePath, "write-baseline", "", "Record the current deviations to this baseline file")
}

// runCheck reports every deviation and returns how many it found.
func runCheck(files []string) (int, error) {
	a, err := newApp()
	if err != nil {
		return 0, err
	}
	defer a.close()

	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return 0, fmt.Errorf("error loading schemas: %w", err)
	}

	var (
		issues  []baseline.Issue
		sources []string
	)
	if len(files) == 0 {
		found, ok, err := checkStored(a, v)
		if err != nil || !ok {
			return 0, err
		}
		issues = found
		sources = []string{store.CoursesKey}
	} else {
		for _, path := range files {
			found, err := checkFile(v, path)
			if err != nil {
				return 0, err
			}
			issues = append(issues, found...)
			sources = append(sources, path)
		}
	}

	if writeBaselinePath != "" {
		if err := baseline.CreateBaseline(issues).SaveBaseline(writeBaselinePath); err != nil {
			return 0, err
		}
		a.printf("Recorded %d %s in %s\n", len(issues), pluralize("deviation", len(issues)), writeBaselinePath)
		return 0, nil
	}

	suppressed := 0
	if baselinePath != "" {
		b, err := baseline.LoadBaseline(baselinePath)
		if err != nil {
			return 0, err
		}
		issues, suppressed = b.Filter(issues)
	}

	reportIssues(a, sources, issues)
	if suppressed > 0 {
		a.printf("%d known %s suppressed by baseline\n", suppressed, pluralize("deviation", suppressed))
	}
	return len(issues), nil
}

// checkStored validates the stored blob. ok is false when nothing is
// stored yet.
func checkStored(a *app, v *cue.Validator) (issues []baseline.Issue, ok bool, err error) {
	content, err := a.courses.Raw()
	if errors.Is(err, store.ErrNotFound) {
		a.printf("No course data stored yet\n")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return []baseline.Issue{{
			Source: store.CoursesKey,
			ValidationError: cue.ValidationError{
				Message:  "not valid JSON: " + err.Error(),
				Severity: cue.SeverityError,
			},
		}}, true, nil
	}
	issues, err = validate(v, store.CoursesKey, raw)
	return issues, true, err
}

func checkFile(v *cue.Validator, path string) ([]baseline.Issue, error) {
	f, err := discovery.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := rawfile.Decode(f)
	if err != nil {
		return nil, err
	}
	// A single record is checked as a one-element collection.
	target := raw
	if records, err := rawfile.Records(raw); err == nil {
		target = records
	}
	return validate(v, path, target)
}

func validate(v *cue.Validator, source string, raw any) ([]baseline.Issue, error) {
	found, err := v.ValidateCollection(raw)
	if err != nil {
		return nil, err
	}
	issues := make([]baseline.Issue, 0, len(found))
	for _, e := range found {
		issues = append(issues, baseline.Issue{Source: source, ValidationError: e})
	}
	return issues, nil
}

func reportIssues(a *app, sources []string, issues []baseline.Issue) {
	failed := make(map[string]bool)
	for _, issue := range issues {
		fmt.Fprintln(stdout, issue)
		failed[issue.Source] = true
	}
	for _, source := range sources {
		if !failed[source] {
			a.printf("✓ %s matches the canonical schema\n", source)
		}
	}
}
