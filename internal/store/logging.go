package store

import (
	"sync/atomic"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

// LoggingMiddleware logs every dispatched action's description. Logging is
// gated behind the DebugLogging setting in the state itself, so toggling
// the setting toggles the logs; SetForced overrides the setting for debug
// tooling.
//
// Register it before side-effecting middleware so actions are logged
// before their effects are scheduled.
type LoggingMiddleware struct {
	logf   LogFunc
	forced atomic.Bool
}

// NewLoggingMiddleware creates a logging middleware writing through logf.
func NewLoggingMiddleware(logf LogFunc) *LoggingMiddleware {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &LoggingMiddleware{logf: logf}
}

// SetForced enables logging regardless of the DebugLogging setting.
func (m *LoggingMiddleware) SetForced(on bool) {
	m.forced.Store(on)
}

func (m *LoggingMiddleware) enabled(st state.AppState) bool {
	return m.forced.Load() || st.Settings.DebugLogging
}

// BeforeDispatch implements Middleware.
func (m *LoggingMiddleware) BeforeDispatch(a action.Action, current state.AppState) {
	if m.enabled(current) {
		m.logf("dispatch %s [%s]", a.Description(), a.Category())
	}
}

// AfterDispatch implements Middleware.
func (m *LoggingMiddleware) AfterDispatch(a action.Action, previous, next state.AppState) {
	if m.enabled(next) && !m.enabled(previous) {
		m.logf("debug logging enabled by %s", a.Description())
	}
}
