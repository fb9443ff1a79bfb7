package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dotcommander/uttrack/internal/project"
)

// Formats lists the accepted report formats.
var Formats = []string{"console", "compact", "json", "markdown", "csv", "yaml"}

// ConfigFiles are tried in order; the first one that parses wins.
var ConfigFiles = []string{".uttrackrc.json", ".uttrackrc.yaml", ".uttrackrc.yml"}

// Config represents the uttrack configuration
type Config struct {
	DataDir string `mapstructure:"dataDir" json:"dataDir,omitempty"`
	Format  string `mapstructure:"format" json:"format"`
	Output  string `mapstructure:"output" json:"output,omitempty"`
	Quiet   bool   `mapstructure:"quiet" json:"quiet"`
	Verbose bool   `mapstructure:"verbose" json:"verbose"`
	Color   bool   `mapstructure:"color" json:"color"`
}

// LoadConfig loads configuration from defaults, a .env file, the first
// .uttrackrc file found in the working directory and UTTRACK_* environment
// variables, in increasing priority. A non-empty dataDir overrides them all.
// When no data directory is configured it is discovered from the working
// directory.
func LoadConfig(dataDir string) (*Config, error) {
	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	// Set default values
	viper.SetDefault("dataDir", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("color", true)

	// Config file locations
	for _, path := range ConfigFiles {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("UTTRACK")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if dataDir != "" {
		config.DataDir = dataDir
	}
	if config.DataDir == "" {
		found, err := project.FindDataDir(".")
		if err != nil {
			return nil, fmt.Errorf("error locating data directory: %w", err)
		}
		config.DataDir = found
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if !slices.Contains(Formats, config.Format) {
		return fmt.Errorf("invalid format: %s. Must be one of %v", config.Format, Formats)
	}
	if config.Quiet && config.Verbose {
		return fmt.Errorf("quiet and verbose cannot both be set")
	}
	return nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, append(jsonData, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
