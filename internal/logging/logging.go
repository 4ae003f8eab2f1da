package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// debugEnabled is a package-level flag so hot paths can skip building
// debug log attributes without consulting the handler level each call.
var debugEnabled atomic.Bool

// EnableDebug enables or disables the cheap debug guard. Setup calls
// this from the parsed level; tests may toggle it directly.
func EnableDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug logging is on. Use it to guard
// expensive debug log calls:
//
//	if logging.DebugEnabled() {
//	    slog.Debug("tier consulted", "snapshot", buildSnapshot())
//	}
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// ParseLevel maps a config log level string to a slog.Level.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger writing to stdout and to a
// dated file under dir. The date prefix makes external rotation a
// matter of deleting old files. The caller closes the returned file
// on shutdown.
func Setup(dir, level string) (*os.File, error) {
	lvl := ParseLevel(level)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir %s: %w", dir, err)
	}

	name := fmt.Sprintf("engine_%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, file), &slog.HandlerOptions{
		Level: lvl,
	})
	slog.SetDefault(slog.New(handler))
	EnableDebug(lvl <= slog.LevelDebug)

	return file, nil
}
