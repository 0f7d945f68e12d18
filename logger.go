package texconv

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so the Debug call
// sites guarded by Enabled never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// defaultLogger is read by every conversion that was not given WithLogger.
var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(silent)
}

// SetLogger sets the logger conversions report to when the call carries no
// WithLogger option. nil silences texconv again, which is also the state
// before the first SetLogger.
//
// Records are emitted at two levels:
//   - [slog.LevelWarn]: TryIntoDynamic met a format it cannot turn into an
//     image. This fires once per call; repeated calls repeat the record.
//   - [slog.LevelDebug]: one record per conversion naming the image variant,
//     texture format and size, and one per rejected buffer length.
//
// It may be called while conversions run on other goroutines; each
// conversion uses whichever logger was set when it started.
//
//	texconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	defaultLogger.Store(l)
}

// Logger returns the logger set with SetLogger, or a silent one.
func Logger() *slog.Logger {
	return defaultLogger.Load()
}
