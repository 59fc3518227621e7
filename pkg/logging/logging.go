// Package logging provides the leveled console logger used by the
// loginitemsscan CLI and test harnesses: a human-readable, optionally
// colorized logr.LogSink with the three verbosity levels the rest of the
// module logs at.
package logging

import (
	"github.com/go-logr/logr"
)

// Verbosity levels. Non-fatal decode anomalies are reported at LEVEL_DEBUG;
// per-field detail at LEVEL_TRACE.
const (
	LEVEL_INFO  = 0
	LEVEL_DEBUG = 1
	LEVEL_TRACE = 2
)

// DefaultLogger returns the logger a library consumer gets without any
// configuration: a discarding one, so decoding stays silent unless a sink is
// wired in explicitly.
func DefaultLogger() logr.Logger {
	return logr.Discard()
}
