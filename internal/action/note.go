package action

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/state"
)

// AddNote appends a note to the end of a subject's note list.
type AddNote struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// Note is the full entity to add.
	Note state.Note
}

// Category implements Action.
func (AddNote) Category() Category { return CategoryNote }

// Description implements Action.
func (a AddNote) Description() string {
	return fmt.Sprintf("note.add id=%s subject=%s", a.Note.ID, a.SubjectID)
}

// UpdateNote replaces an existing note, located by ID within its subject.
// A replacement carrying no pages keeps the existing pages, so callers can
// update metadata without re-supplying the page list. Unknown subject or
// note IDs are ignored.
type UpdateNote struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// Note is the full replacement entity.
	Note state.Note
}

// Category implements Action.
func (UpdateNote) Category() Category { return CategoryNote }

// Description implements Action.
func (a UpdateNote) Description() string {
	return fmt.Sprintf("note.update id=%s subject=%s", a.Note.ID, a.SubjectID)
}

// DeleteNote removes a note and, by cascade, its pages.
type DeleteNote struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the note to delete.
	NoteID uuid.UUID
}

// Category implements Action.
func (DeleteNote) Category() Category { return CategoryNote }

// Description implements Action.
func (a DeleteNote) Description() string {
	return fmt.Sprintf("note.delete id=%s subject=%s", a.NoteID, a.SubjectID)
}

// MoveNote moves a note from one subject to the end of another's note
// list. If either subject or the note is missing, the action is ignored.
type MoveNote struct {
	// NoteID identifies the note to move.
	NoteID uuid.UUID

	// FromSubjectID identifies the current owner.
	FromSubjectID uuid.UUID

	// ToSubjectID identifies the destination subject.
	ToSubjectID uuid.UUID
}

// Category implements Action.
func (MoveNote) Category() Category { return CategoryNote }

// Description implements Action.
func (a MoveNote) Description() string {
	return fmt.Sprintf("note.move id=%s from=%s to=%s", a.NoteID, a.FromSubjectID, a.ToSubjectID)
}
