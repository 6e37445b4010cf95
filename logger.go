package bui

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for bui and all its sub-packages.
// By default, bui produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by bui:
//   - [slog.LevelDebug]: glyph lookups, outline generation, synthesized
//     closing lines, primitive counts
//   - [slog.LevelWarn]: dropped input such as unsupported outline segments
//
// Example:
//
//	bui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by bui.
// Sub-packages (text/, blockfont/, render/) call this to share the same
// configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
