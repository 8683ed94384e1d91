package action

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/state"
)

// AddPage appends a page to the end of a note's page list. A page with no
// explicit PageNumber receives the next position.
type AddPage struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the owning note.
	NoteID uuid.UUID

	// Page is the full entity to add.
	Page state.Page
}

// Category implements Action.
func (AddPage) Category() Category { return CategoryPage }

// Description implements Action.
func (a AddPage) Description() string {
	return fmt.Sprintf("page.add id=%s note=%s subject=%s", a.Page.ID, a.NoteID, a.SubjectID)
}

// UpdatePage replaces an existing page, located by ID within its note.
// Unknown IDs anywhere along the path are ignored.
type UpdatePage struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the owning note.
	NoteID uuid.UUID

	// Page is the full replacement entity.
	Page state.Page
}

// Category implements Action.
func (UpdatePage) Category() Category { return CategoryPage }

// Description implements Action.
func (a UpdatePage) Description() string {
	return fmt.Sprintf("page.update id=%s note=%s subject=%s", a.Page.ID, a.NoteID, a.SubjectID)
}

// DeletePage removes a page by ID. Remaining pages are renumbered to match
// their new array positions.
type DeletePage struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the owning note.
	NoteID uuid.UUID

	// PageID identifies the page to delete.
	PageID uuid.UUID
}

// Category implements Action.
func (DeletePage) Category() Category { return CategoryPage }

// Description implements Action.
func (a DeletePage) Description() string {
	return fmt.Sprintf("page.delete id=%s note=%s subject=%s", a.PageID, a.NoteID, a.SubjectID)
}

// ReorderPages moves the page at index From to index To within a note.
// PageNumber fields are recomputed to match the new array order.
// Out-of-range indices are ignored.
type ReorderPages struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the owning note.
	NoteID uuid.UUID

	// From is the current zero-based index of the page.
	From int

	// To is the target zero-based index.
	To int
}

// Category implements Action.
func (ReorderPages) Category() Category { return CategoryPage }

// Description implements Action.
func (a ReorderPages) Description() string {
	return fmt.Sprintf("page.reorder from=%d to=%d note=%s subject=%s", a.From, a.To, a.NoteID, a.SubjectID)
}
