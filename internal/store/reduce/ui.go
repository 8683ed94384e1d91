package reduce

import (
	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

// reduceUI handles the Navigation category. UI actions always apply: they
// carry the full replacement value for the field they target.
func reduceUI(ui state.UIState, a action.Action) (state.UIState, bool) {
	switch act := a.(type) {
	case action.NavigateTo:
		ui.Nav = act.Target
		return ui, true
	case action.SetSidebarVisible:
		ui.SidebarVisible = act.Visible
		return ui, true
	case action.SetGridVisible:
		ui.GridVisible = act.Visible
		return ui, true
	case action.SetSelection:
		ui.Selection = act.Selection
		return ui, true
	case action.SetSearchText:
		ui.SearchText = act.Text
		return ui, true
	default:
		return ui, false
	}
}
