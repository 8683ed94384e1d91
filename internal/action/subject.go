package action

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/state"
)

// AddSubject appends a new subject to the end of the subject list. A
// subject whose ID already exists is ignored.
type AddSubject struct {
	// Subject is the full entity to add.
	Subject state.Subject
}

// Category implements Action.
func (AddSubject) Category() Category { return CategorySubject }

// Description implements Action.
func (a AddSubject) Description() string {
	return fmt.Sprintf("subject.add id=%s", a.Subject.ID)
}

// UpdateSubject replaces an existing subject's metadata, located by ID. The
// subject's notes are preserved unless the replacement carries its own.
// Unknown IDs are ignored.
type UpdateSubject struct {
	// Subject is the full replacement entity.
	Subject state.Subject
}

// Category implements Action.
func (UpdateSubject) Category() Category { return CategorySubject }

// Description implements Action.
func (a UpdateSubject) Description() string {
	return fmt.Sprintf("subject.update id=%s", a.Subject.ID)
}

// DeleteSubject removes a subject and, by cascade, every note and page it
// owns. Unknown IDs are ignored.
type DeleteSubject struct {
	// SubjectID identifies the subject to delete.
	SubjectID uuid.UUID
}

// Category implements Action.
func (DeleteSubject) Category() Category { return CategorySubject }

// Description implements Action.
func (a DeleteSubject) Description() string {
	return fmt.Sprintf("subject.delete id=%s", a.SubjectID)
}
