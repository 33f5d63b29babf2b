package rasterfx

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/rasterfx/internal/filter"
	"github.com/gogpu/rasterfx/internal/resize"
)

// nopHandler discards every record. Enabled reports false, so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the default, silent logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger; filters may log from worker goroutines.
var loggerPtr = func() *atomic.Pointer[slog.Logger] {
	p := new(atomic.Pointer[slog.Logger])
	p.Store(newNopLogger())
	return p
}()

// SetLogger routes the diagnostics of rasterfx, its filters and the resize
// pipeline to l. Nothing is logged until SetLogger is called; nil restores
// the silent default. It may be called while other goroutines are filtering.
//
// All records are emitted at [slog.LevelDebug]: kernel construction, pass
// counts, resize plans and rejected input.
//
// Example:
//
//	rasterfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	filter.SetLogger(l)
	resize.SetLogger(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
