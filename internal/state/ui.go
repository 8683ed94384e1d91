package state

import "github.com/google/uuid"

// NavTarget identifies the screen the UI is presenting.
type NavTarget int

const (
	// NavSubjectList shows the top-level subject list.
	NavSubjectList NavTarget = iota

	// NavNoteGrid shows the note grid for the selected subject.
	NavNoteGrid

	// NavPageCanvas shows the drawing canvas for the selected page.
	NavPageCanvas
)

// String returns a human-readable target name.
func (n NavTarget) String() string {
	switch n {
	case NavSubjectList:
		return "subject-list"
	case NavNoteGrid:
		return "note-grid"
	case NavPageCanvas:
		return "page-canvas"
	default:
		return "unknown"
	}
}

// Selection is the active entity selection. Unselected levels hold
// uuid.Nil.
type Selection struct {
	SubjectID uuid.UUID
	NoteID    uuid.UUID
	PageID    uuid.UUID
}

// UIState is the navigation and presentation state.
type UIState struct {
	// Nav is the current navigation target.
	Nav NavTarget

	// SidebarVisible controls the subject sidebar.
	SidebarVisible bool

	// GridVisible controls grid (vs. list) layout in the note grid.
	GridVisible bool

	// Selection is the active selection.
	Selection Selection

	// SearchText is the live search query, empty when not searching.
	SearchText string
}
