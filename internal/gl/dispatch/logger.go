package dispatch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Binding logs nothing unless the application
// asks for it.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger sets the logger used by dispatchers created without WithLogger,
// and by Audit. Pass nil to discard output again. Dispatchers read it on
// every Bind, so the change applies to existing dispatchers too.
//
// Records carry the dispatcher id and symbol prefix. Levels:
//   - [slog.LevelDebug]: per-tier binding decisions, audits
//   - [slog.LevelInfo]: completed binds
//   - [slog.LevelWarn]: drivers reporting a level beyond the catalog
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	pkgLogger.Store(l)
}

// Logger returns the logger GL binding reports to; glprobe points it at
// stderr and gl.Load uses it for negotiation results.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
