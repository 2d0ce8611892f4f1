package log

import (
	stdlog "log"
	"os"
)

// Logger is the leveled logging surface gridtied components accept.
// It is intentionally tiny: Debugf for per-cell/per-iteration detail
// that is only interesting while developing, Infof for once-per-call
// lifecycle events (fast-path hit, refiner fallback), and Warnf for
// recovered failures (numeric degeneracy guards, refiner time-outs).
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// nopLogger discards every message. It is the default used whenever a
// caller does not supply a Logger, so gridtied never prints to stdout
// on behalf of a library consumer.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}

// NopLogger is a Logger that discards all messages.
var NopLogger Logger = nopLogger{}

// StdLogger adapts the stdlib log.Logger to the Logger interface, for
// local debugging. Debug messages are only emitted when Verbose is
// true; Info and Warn are always emitted.
type StdLogger struct {
	inner   *stdlog.Logger
	Verbose bool
}

// NewStdLogger returns a StdLogger writing to os.Stderr with the given
// prefix, e.g. NewStdLogger("gridtied: ", false).
func NewStdLogger(prefix string, verbose bool) *StdLogger {
	return &StdLogger{
		inner:   stdlog.New(os.Stderr, prefix, stdlog.LstdFlags),
		Verbose: verbose,
	}
}

func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.Verbose {
		l.inner.Printf("DEBUG "+format, args...)
	}
}

func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.inner.Printf("INFO "+format, args...)
}

func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.inner.Printf("WARN "+format, args...)
}

// Or returns l if non-nil, otherwise NopLogger. Components call this
// once at the top of their entry point so internal code can always
// call a non-nil Logger.
func Or(l Logger) Logger {
	if l == nil {
		return NopLogger
	}

	return l
}
