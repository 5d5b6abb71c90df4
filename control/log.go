package control

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger of the package and its widgets. By default
// nothing is logged; pass nil to go back to that.
//
// Levels used:
//   - Debug: interaction state transitions and rejected input
//   - Warn: declarations that could not be honored, e.g. unknown variants
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
