// Package corelog provides the structured logging facade used across the
// core: a package-level logr.Logger, defaulting to stdr over the standard
// library logger, overridable by an embedding caller.
package corelog

import (
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var logger logr.Logger = stdr.New(log.Default())

// SetLogger replaces the package-level logger, for embedders that want
// their own sink (e.g. a structured JSON logger, or discard entirely via
// logr.Discard()).
func SetLogger(l logr.Logger) {
	logger = l
}

// Logger returns the current package-level logger.
func Logger() logr.Logger {
	return logger
}

// Info logs a progress message (perft counts, search summaries) at the
// default verbosity level.
func Info(msg string, keysAndValues ...any) {
	logger.Info(msg, keysAndValues...)
}

// Error logs an invariant violation before the caller panics. It exists
// so the diagnostic reaches the configured sink even when the process is
// about to die.
func Error(err error, msg string, keysAndValues ...any) {
	logger.Error(err, msg, keysAndValues...)
}
