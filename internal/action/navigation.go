package action

import (
	"fmt"

	"github.com/inklet/inklet/internal/state"
)

// NavigateTo changes the presented screen.
type NavigateTo struct {
	// Target is the destination screen.
	Target state.NavTarget
}

// Category implements Action.
func (NavigateTo) Category() Category { return CategoryNavigation }

// Description implements Action.
func (a NavigateTo) Description() string {
	return fmt.Sprintf("navigation.go target=%s", a.Target)
}

// SetSidebarVisible shows or hides the subject sidebar.
type SetSidebarVisible struct {
	Visible bool
}

// Category implements Action.
func (SetSidebarVisible) Category() Category { return CategoryNavigation }

// Description implements Action.
func (a SetSidebarVisible) Description() string {
	return fmt.Sprintf("navigation.sidebar visible=%t", a.Visible)
}

// SetGridVisible switches the note grid between grid and list layout.
type SetGridVisible struct {
	Visible bool
}

// Category implements Action.
func (SetGridVisible) Category() Category { return CategoryNavigation }

// Description implements Action.
func (a SetGridVisible) Description() string {
	return fmt.Sprintf("navigation.grid visible=%t", a.Visible)
}

// SetSelection replaces the active entity selection.
type SetSelection struct {
	Selection state.Selection
}

// Category implements Action.
func (SetSelection) Category() Category { return CategoryNavigation }

// Description implements Action.
func (a SetSelection) Description() string {
	return fmt.Sprintf("navigation.select subject=%s note=%s page=%s",
		a.Selection.SubjectID, a.Selection.NoteID, a.Selection.PageID)
}

// SetSearchText replaces the live search query.
type SetSearchText struct {
	Text string
}

// Category implements Action.
func (SetSearchText) Category() Category { return CategoryNavigation }

// Description implements Action.
func (a SetSearchText) Description() string {
	return fmt.Sprintf("navigation.search text=%q", a.Text)
}
