// Package logging provides config-driven categorized file-based logging for wallarea.
// Logs are written to <logs dir>/<date>_<category>.log, one file per category.
// Logging is controlled by logging.debug_mode in the config file - when false, no logs
// are written and every category logger is a no-op. The terminal form owns stdout, so
// it logs only through these files.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wallarea/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, flags, config resolution
	CategoryCalc   Category = "calc"   // Calculation requests and outcomes
	CategoryUI     Category = "ui"     // Terminal form events
	CategoryConfig Category = "config" // Config load, save and live reload
)

var (
	loggers   = make(map[Category]*zap.Logger)
	files     = make(map[Category]*os.File)
	loggersMu sync.RWMutex

	logsDir  string
	settings config.LoggingConfig
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Initialize sets up the logging directory from cfg. Must be called once at startup,
// before Get. With debug mode off it only records the settings.
func Initialize(cfg config.LoggingConfig) error {
	CloseAll()

	loggersMu.Lock()
	settings = cfg
	logsDir = cfg.Dir
	if logsDir == "" {
		logsDir = filepath.Join(config.DefaultDir(), "logs")
	}
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)
	loggersMu.Unlock()

	if !cfg.DebugMode {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("logging initialized",
		zap.String("dir", logsDir),
		zap.String("level", lvl.String()),
		zap.String("format", cfg.Format),
	)
	return nil
}

// SetLevel changes the level of every category logger, e.g. after a config reload.
func SetLevel(name string) error {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// IsDebugMode returns whether file logging is enabled.
func IsDebugMode() bool {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return settings.DebugMode
}

// Dir returns the directory log files are written to.
func Dir() string {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return logsDir
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	loggersMu.RLock()
	if !settings.IsCategoryEnabled(string(category)) || logsDir == "" {
		loggersMu.RUnlock()
		return zap.NewNop()
	}
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return zap.NewNop()
	}

	core := zapcore.NewCore(newEncoder(settings.Format), zapcore.AddSync(file), level)
	l := zap.New(core).Named(string(category))
	loggers[category] = l
	files[category] = file
	return l
}

func newEncoder(format string) zapcore.Encoder {
	if format == "console" {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
}

// CloseAll syncs and closes every category log file.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for cat, l := range loggers {
		_ = l.Sync()
		if f, ok := files[cat]; ok {
			_ = f.Close()
		}
	}
	loggers = make(map[Category]*zap.Logger)
	files = make(map[Category]*os.File)
}

// NewCLILogger builds the stderr logger used by non-interactive commands.
func NewCLILogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
