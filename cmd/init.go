package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/config"
	"github.com/dotcommander/uttrack/internal/project"
	"github.com/dotcommander/uttrack/internal/store"
)

var initWithConfig bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a local data directory",
	Long: `Create a .uttrack data directory in dir (default: the working directory).
Commands run anywhere below dir then use it instead of ~/.uttrack, which keeps
one semester or study program apart from another.

With --config a .uttrackrc.json holding the current settings is written next
to it.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		if err := runInit(dir, initWithConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initWithConfig, "config", false, "Also write a .uttrackrc.json")
}

func runInit(dir string, writeConfig bool) error {
	dataPath := filepath.Join(dir, project.DataDirName)
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	if err := store.NewFileKV(dataPath).Probe(store.CoursesKey); err != nil {
		return fmt.Errorf("data directory %s is not writable: %w", dataPath, err)
	}

	if writeConfig {
		cfgPath := filepath.Join(dir, config.ConfigFiles[0])
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("%s already exists", cfgPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot access %s: %w", cfgPath, err)
		}

		cfg := &config.Config{
			DataDir: project.DataDirName,
			Format:  "console",
			Output:  outputFile,
			Quiet:   quiet,
			Verbose: verbose,
			Color:   !noColor,
		}
		if outputFormat != "" {
			cfg.Format = outputFormat
		}
		if err := config.SaveConfig(cfg, cfgPath); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(stdout, "Wrote %s\n", cfgPath)
		}
	}

	if quiet {
		return nil
	}
	info, err := project.Detect(dir)
	if err == nil && len(info.Files) > 0 {
		fmt.Fprintf(stdout, "Reusing data directory %s (%d stored %s)\n",
			dataPath, len(info.Files), pluralize("key", len(info.Files)))
		return nil
	}
	fmt.Fprintf(stdout, "Initialized data directory %s\n", dataPath)
	return nil
}
