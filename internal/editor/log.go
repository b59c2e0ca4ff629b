package editor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by every session. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: commits, undo and redo, restores, edit-mode changes, subdivision
//   - [slog.LevelInfo]: session lifecycle
//   - [slog.LevelWarn]: snapshots that could not be recorded
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current editor logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
