package state

import (
	"time"

	"github.com/google/uuid"
)

// ContentState is the domain entity tree: subjects, each owning an ordered
// sequence of notes, each owning an ordered sequence of pages. Ordering is
// significant and preserved for list rendering.
type ContentState struct {
	Subjects []Subject
}

// Subject is a top-level grouping of notes.
type Subject struct {
	// ID is the stable unique identifier.
	ID uuid.UUID

	// Name is the user-visible subject name.
	Name string

	// Color is the subject's accent color, as a hex string.
	Color string

	// CreatedAt is when the subject was created.
	CreatedAt time.Time

	// LastModified tracks the most recent mutation to the subject or any
	// of its notes and pages. Used for externally-visible change
	// tracking such as sync and export ordering.
	LastModified time.Time

	// Notes are the subject's notes, in display order.
	Notes []Note
}

// Note is a notebook within a subject.
type Note struct {
	// ID is the stable unique identifier.
	ID uuid.UUID

	// Title is the user-visible note title.
	Title string

	// TemplateID names the template applied to new pages of this note.
	TemplateID string

	// CreatedAt is when the note was created.
	CreatedAt time.Time

	// Pages are the note's pages, in display order.
	Pages []Page
}

// Page is a single canvas page within a note.
type Page struct {
	// ID is the stable unique identifier.
	ID uuid.UUID

	// PageNumber is the explicit 1-based sequence position. Kept in sync
	// with array order by the reducers.
	PageNumber int

	// TemplateID names the template rendered behind the page's canvas.
	TemplateID string
}

// Same reports identifier-based equality.
func (s Subject) Same(o Subject) bool { return s.ID == o.ID }

// Same reports identifier-based equality.
func (n Note) Same(o Note) bool { return n.ID == o.ID }

// Same reports identifier-based equality.
func (p Page) Same(o Page) bool { return p.ID == o.ID }

// SubjectIndex returns the index of the subject with the given ID, or -1.
func (c ContentState) SubjectIndex(id uuid.UUID) int {
	for i, s := range c.Subjects {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Subject returns the subject with the given ID.
func (c ContentState) Subject(id uuid.UUID) (Subject, bool) {
	if i := c.SubjectIndex(id); i >= 0 {
		return c.Subjects[i], true
	}
	return Subject{}, false
}

// NoteIndex returns the index of the note with the given ID, or -1.
func (s Subject) NoteIndex(id uuid.UUID) int {
	for i, n := range s.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Note returns the note with the given ID.
func (s Subject) Note(id uuid.UUID) (Note, bool) {
	if i := s.NoteIndex(id); i >= 0 {
		return s.Notes[i], true
	}
	return Note{}, false
}

// PageIndex returns the index of the page with the given ID, or -1.
func (n Note) PageIndex(id uuid.UUID) int {
	for i, p := range n.Pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Page returns the page with the given ID.
func (n Note) Page(id uuid.UUID) (Page, bool) {
	if i := n.PageIndex(id); i >= 0 {
		return n.Pages[i], true
	}
	return Page{}, false
}

// NoteCount returns the total number of notes across all subjects.
func (c ContentState) NoteCount() int {
	n := 0
	for _, s := range c.Subjects {
		n += len(s.Notes)
	}
	return n
}

// PageCount returns the total number of pages across all subjects.
func (c ContentState) PageCount() int {
	n := 0
	for _, s := range c.Subjects {
		for _, note := range s.Notes {
			n += len(note.Pages)
		}
	}
	return n
}
