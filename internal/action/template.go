package action

import (
	"fmt"

	"github.com/google/uuid"
)

// SetNoteTemplate changes the template applied to new pages of a note.
type SetNoteTemplate struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the note.
	NoteID uuid.UUID

	// TemplateID names the template.
	TemplateID string
}

// Category implements Action.
func (SetNoteTemplate) Category() Category { return CategoryTemplate }

// Description implements Action.
func (a SetNoteTemplate) Description() string {
	return fmt.Sprintf("template.set-note template=%s note=%s subject=%s", a.TemplateID, a.NoteID, a.SubjectID)
}

// ApplyPageTemplate changes the template rendered behind one page.
type ApplyPageTemplate struct {
	// SubjectID identifies the owning subject.
	SubjectID uuid.UUID

	// NoteID identifies the owning note.
	NoteID uuid.UUID

	// PageID identifies the page.
	PageID uuid.UUID

	// TemplateID names the template.
	TemplateID string
}

// Category implements Action.
func (ApplyPageTemplate) Category() Category { return CategoryTemplate }

// Description implements Action.
func (a ApplyPageTemplate) Description() string {
	return fmt.Sprintf("template.apply-page template=%s page=%s note=%s subject=%s",
		a.TemplateID, a.PageID, a.NoteID, a.SubjectID)
}
