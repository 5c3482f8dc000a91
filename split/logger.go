package split

import (
	"sync/atomic"

	"golang.org/x/exp/slog"
)

var packageLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for teardown failures and leak reports. The
// package defaults to slog.Default. Passing nil restores the default.
func SetLogger(logger *slog.Logger) {
	packageLogger.Store(logger)
}

// Logger retrieves the logger currently used for teardown failures and leak reports.
func Logger() *slog.Logger {
	logger := packageLogger.Load()
	if logger == nil {
		return slog.Default()
	}
	return logger
}
