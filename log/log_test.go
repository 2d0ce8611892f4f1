package log_test

import (
	"testing"

	"github.com/gridtied/gridtied/log"
)

func TestNopLogger_NeverPanics(t *testing.T) {
	log.NopLogger.Debugf("x=%d", 1)
	log.NopLogger.Infof("x=%d", 1)
	log.NopLogger.Warnf("x=%d", 1)
}

func TestOr_NilFallsBackToNop(t *testing.T) {
	l := log.Or(nil)
	if l != log.NopLogger {
		t.Fatal("want Or(nil) == NopLogger")
	}
}

func TestOr_NonNilPassesThrough(t *testing.T) {
	stdl := log.NewStdLogger("test: ", false)
	l := log.Or(stdl)
	if l != stdl {
		t.Fatal("want Or(l) == l for non-nil l")
	}
}

func TestStdLogger_VerboseGatesDebug(t *testing.T) {
	quiet := log.NewStdLogger("", false)
	quiet.Debugf("suppressed %d", 1)
	quiet.Infof("always shown %d", 1)
	quiet.Warnf("always shown %d", 1)

	verbose := log.NewStdLogger("", true)
	verbose.Debugf("shown %d", 1)
}
