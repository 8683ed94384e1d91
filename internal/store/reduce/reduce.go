package reduce

import (
	"time"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

// Reduce computes the next application state for an action. now is the
// timestamp used for touch propagation; the store passes the wall clock,
// tests pass a fixed instant, so reduction stays deterministic for fixed
// inputs.
//
// The returned bool reports whether the action applied. A false return
// means the state came back unchanged because the action referenced a
// missing entity or an out-of-range index.
func Reduce(s state.AppState, a action.Action, now time.Time) (state.AppState, bool) {
	if a == nil {
		return s, false
	}

	switch a.Category() {
	case action.CategorySubject, action.CategoryNote, action.CategoryPage, action.CategoryTemplate:
		content, applied := reduceContent(s.Content, a, now)
		s.Content = content
		return s, applied
	case action.CategoryNavigation:
		ui, applied := reduceUI(s.UI, a)
		s.UI = ui
		return s, applied
	case action.CategorySettings:
		settings, applied := reduceSettings(s.Settings, a)
		s.Settings = settings
		return s, applied
	default:
		return s, false
	}
}
