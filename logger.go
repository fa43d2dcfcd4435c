package lowp

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// race with logging calls from any goroutine running a pipeline.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by lowp. By default lowp produces no
// log output. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use: the logger is stored atomically, so
// it may be changed while RunTiled goroutines are in flight.
//
// Log levels used by lowp:
//   - [slog.LevelDebug]: RunTiled row-range scheduling (see tiled.go)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently configured for lowp.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
