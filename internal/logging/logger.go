// Package logging provides config-driven categorized logging for coderank.
// Every category is a named child of one zap logger built from
// config.LoggingConfig. Until Initialize runs, Get hands out no-op loggers.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"coderank/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot  Category = "boot"  // Startup, config resolution
	CategoryFetch Category = "fetch" // CSV download and parsing
	CategoryUI    Category = "ui"    // Interactive table
	CategoryCLI   Category = "cli"   // Non-interactive commands
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	loggers = make(map[Category]*zap.Logger)
	logFile *os.File
)

// Initialize builds the root logger. When cfg.File is set, entries are
// appended to that file; otherwise they go to fallback. A nil fallback
// discards output, which is what the full-screen UI wants.
func Initialize(cfg config.LoggingConfig, fallback zapcore.WriteSyncer) error {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var sink zapcore.WriteSyncer
	var file *os.File
	switch {
	case cfg.HasFile():
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		sink = zapcore.Lock(file)
	case fallback != nil:
		sink = fallback
	}

	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()
	loggers = make(map[Category]*zap.Logger)
	level.SetLevel(lvl)
	logFile = file

	if sink == nil {
		base = zap.NewNop()
		return nil
	}
	base = zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, level))
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	if format == "json" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// Get returns (or creates) the logger for the given category.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Named(string(category))
	loggers[category] = l
	return l
}

// Level returns the current minimum level.
func Level() zapcore.Level {
	return level.Level()
}

// Sync flushes buffered entries and closes the log file, if any. Loggers
// obtained before Sync must not be used afterwards.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()

	err := base.Sync()
	closeFileLocked()
	base = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
	return err
}

func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
