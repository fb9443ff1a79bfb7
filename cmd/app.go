package cmd

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dotcommander/uttrack/internal/config"
	"github.com/dotcommander/uttrack/internal/links"
	"github.com/dotcommander/uttrack/internal/output"
	"github.com/dotcommander/uttrack/internal/outputters"
	"github.com/dotcommander/uttrack/internal/store"
	"github.com/dotcommander/uttrack/internal/tracker"
)

// app bundles what every command needs: configuration, logger and the
// repositories over the data directory.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	kv      *store.FileKV
	courses *store.CourseRepository
	links   *links.Repository
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	applyFlags(cfg)

	logger := newLogger(cfg.Verbose)
	kv := store.NewFileKV(cfg.DataDir)
	logger.Debug("Using data directory", zap.String("dir", cfg.DataDir))

	return &app{
		cfg:     cfg,
		logger:  logger,
		kv:      kv,
		courses: store.NewCourseRepository(kv, logger),
		links:   links.NewRepository(kv, logger),
	}, nil
}

// applyFlags lets explicitly passed flags override the loaded configuration.
func applyFlags(cfg *config.Config) {
	if outputFormat != "" {
		cfg.Format = outputFormat
	}
	if outputFile != "" {
		cfg.Output = outputFile
	}
	if quiet {
		cfg.Quiet, cfg.Verbose = true, false
	}
	if verbose {
		cfg.Verbose, cfg.Quiet = true, false
	}
	if noColor {
		cfg.Color = false
	}
}

// newLogger builds the development logger at Warn, or Debug when verbose.
func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// writable probes the store before a mutation so a read-only data
// directory fails early with a clear message.
func (a *app) writable() error {
	if err := a.kv.Probe(store.CoursesKey); err != nil {
		a.logger.Warn("Storage unavailable", zap.Error(err))
		return fmt.Errorf("data directory %s is not writable: %w", a.cfg.DataDir, store.ErrReadOnly)
	}
	return nil
}

// loadState loads the collection into a fresh tracker state.
func (a *app) loadState() (*tracker.State, error) {
	courses, err := a.courses.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading courses: %w", err)
	}
	return tracker.New(courses), nil
}

func (a *app) saveState(s *tracker.State) error {
	return a.courses.Save(s.Courses)
}

func (a *app) render(r *output.Report) error {
	if err := outputters.NewOutputter(a.cfg, stdout).Format(r, a.cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// printf writes a status line unless quiet.
func (a *app) printf(format string, args ...any) {
	if a.cfg.Quiet {
		return
	}
	fmt.Fprintf(stdout, format, args...)
}

// parseNumber converts a 1-based position argument into an index.
func parseNumber(what, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", what, arg)
	}
	return n - 1, nil
}

func pluralize(s string, n int) string {
	if n == 1 {
		return s
	}
	return s + "s"
}
