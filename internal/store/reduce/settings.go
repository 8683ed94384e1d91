package reduce

import (
	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

// reduceSettings handles the Settings category.
func reduceSettings(s state.SettingsState, a action.Action) (state.SettingsState, bool) {
	switch act := a.(type) {
	case action.SetAutoSaveEnabled:
		s.AutoSaveEnabled = act.Enabled
		return s, true
	case action.SetThumbnailsEnabled:
		s.ThumbnailsEnabled = act.Enabled
		return s, true
	case action.SetDebugLogging:
		s.DebugLogging = act.Enabled
		return s, true
	case action.SetDefaultTemplate:
		s.DefaultTemplateID = act.TemplateID
		return s, true
	default:
		return s, false
	}
}
