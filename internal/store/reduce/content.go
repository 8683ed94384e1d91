package reduce

import (
	"time"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

// reduceContent handles the Subject, Note, Page, and Template categories.
//
// Every applied mutation touches the owning subject's LastModified
// timestamp, uniformly for note-level and page-level changes. Cascade
// deletes are a property of the value graph: removing a subject removes
// the notes and pages it owns because nothing else holds them.
func reduceContent(c state.ContentState, a action.Action, now time.Time) (state.ContentState, bool) {
	switch act := a.(type) {
	case action.AddSubject:
		if c.SubjectIndex(act.Subject.ID) >= 0 {
			return c, false
		}
		sub := act.Subject
		if sub.CreatedAt.IsZero() {
			sub.CreatedAt = now
		}
		sub.LastModified = now
		subjects := make([]state.Subject, len(c.Subjects), len(c.Subjects)+1)
		copy(subjects, c.Subjects)
		c.Subjects = append(subjects, sub)
		return c, true

	case action.UpdateSubject:
		i := c.SubjectIndex(act.Subject.ID)
		if i < 0 {
			return c, false
		}
		return withSubject(c, i, now, func(old state.Subject) (state.Subject, bool) {
			sub := act.Subject
			if sub.CreatedAt.IsZero() {
				sub.CreatedAt = old.CreatedAt
			}
			// A metadata-only replacement keeps the existing notes.
			if sub.Notes == nil {
				sub.Notes = old.Notes
			}
			return sub, true
		})

	case action.DeleteSubject:
		i := c.SubjectIndex(act.SubjectID)
		if i < 0 {
			return c, false
		}
		subjects := make([]state.Subject, 0, len(c.Subjects)-1)
		subjects = append(subjects, c.Subjects[:i]...)
		subjects = append(subjects, c.Subjects[i+1:]...)
		c.Subjects = subjects
		return c, true

	case action.AddNote:
		i := c.SubjectIndex(act.SubjectID)
		if i < 0 {
			return c, false
		}
		return withSubject(c, i, now, func(sub state.Subject) (state.Subject, bool) {
			if sub.NoteIndex(act.Note.ID) >= 0 {
				return sub, false
			}
			note := act.Note
			if note.CreatedAt.IsZero() {
				note.CreatedAt = now
			}
			notes := make([]state.Note, len(sub.Notes), len(sub.Notes)+1)
			copy(notes, sub.Notes)
			sub.Notes = append(notes, note)
			return sub, true
		})

	case action.UpdateNote:
		i := c.SubjectIndex(act.SubjectID)
		if i < 0 {
			return c, false
		}
		return withSubject(c, i, now, func(sub state.Subject) (state.Subject, bool) {
			j := sub.NoteIndex(act.Note.ID)
			if j < 0 {
				return sub, false
			}
			return withNote(sub, j, func(old state.Note) (state.Note, bool) {
				note := act.Note
				if note.CreatedAt.IsZero() {
					note.CreatedAt = old.CreatedAt
				}
				// A metadata-only replacement keeps the existing pages.
				if note.Pages == nil {
					note.Pages = old.Pages
				}
				return note, true
			})
		})

	case action.DeleteNote:
		i := c.SubjectIndex(act.SubjectID)
		if i < 0 {
			return c, false
		}
		return withSubject(c, i, now, func(sub state.Subject) (state.Subject, bool) {
			j := sub.NoteIndex(act.NoteID)
			if j < 0 {
				return sub, false
			}
			notes := make([]state.Note, 0, len(sub.Notes)-1)
			notes = append(notes, sub.Notes[:j]...)
			notes = append(notes, sub.Notes[j+1:]...)
			sub.Notes = notes
			return sub, true
		})

	case action.MoveNote:
		return moveNote(c, act, now)

	case action.AddPage:
		return withPageList(c, act.SubjectID, act.NoteID, now, func(note state.Note) (state.Note, bool) {
			if note.PageIndex(act.Page.ID) >= 0 {
				return note, false
			}
			page := act.Page
			if page.PageNumber == 0 {
				page.PageNumber = len(note.Pages) + 1
			}
			pages := make([]state.Page, len(note.Pages), len(note.Pages)+1)
			copy(pages, note.Pages)
			note.Pages = append(pages, page)
			return note, true
		})

	case action.UpdatePage:
		return withPageList(c, act.SubjectID, act.NoteID, now, func(note state.Note) (state.Note, bool) {
			k := note.PageIndex(act.Page.ID)
			if k < 0 {
				return note, false
			}
			pages := make([]state.Page, len(note.Pages))
			copy(pages, note.Pages)
			pages[k] = act.Page
			note.Pages = pages
			return note, true
		})

	case action.DeletePage:
		return withPageList(c, act.SubjectID, act.NoteID, now, func(note state.Note) (state.Note, bool) {
			k := note.PageIndex(act.PageID)
			if k < 0 {
				return note, false
			}
			pages := make([]state.Page, 0, len(note.Pages)-1)
			pages = append(pages, note.Pages[:k]...)
			pages = append(pages, note.Pages[k+1:]...)
			renumber(pages)
			note.Pages = pages
			return note, true
		})

	case action.ReorderPages:
		return withPageList(c, act.SubjectID, act.NoteID, now, func(note state.Note) (state.Note, bool) {
			n := len(note.Pages)
			if act.From < 0 || act.From >= n || act.To < 0 || act.To >= n || act.From == act.To {
				return note, false
			}
			pages := make([]state.Page, n)
			copy(pages, note.Pages)
			moved := pages[act.From]
			pages = append(pages[:act.From], pages[act.From+1:]...)
			pages = append(pages[:act.To], append([]state.Page{moved}, pages[act.To:]...)...)
			renumber(pages)
			note.Pages = pages
			return note, true
		})

	case action.SetNoteTemplate:
		i := c.SubjectIndex(act.SubjectID)
		if i < 0 {
			return c, false
		}
		return withSubject(c, i, now, func(sub state.Subject) (state.Subject, bool) {
			j := sub.NoteIndex(act.NoteID)
			if j < 0 {
				return sub, false
			}
			return withNote(sub, j, func(note state.Note) (state.Note, bool) {
				note.TemplateID = act.TemplateID
				return note, true
			})
		})

	case action.ApplyPageTemplate:
		return withPageList(c, act.SubjectID, act.NoteID, now, func(note state.Note) (state.Note, bool) {
			k := note.PageIndex(act.PageID)
			if k < 0 {
				return note, false
			}
			pages := make([]state.Page, len(note.Pages))
			copy(pages, note.Pages)
			pages[k].TemplateID = act.TemplateID
			note.Pages = pages
			return note, true
		})

	default:
		return c, false
	}
}

// withSubject replaces subject i with fn's result, copying the subject
// slice and touching LastModified. fn returning false leaves c unchanged.
func withSubject(c state.ContentState, i int, now time.Time, fn func(state.Subject) (state.Subject, bool)) (state.ContentState, bool) {
	sub, applied := fn(c.Subjects[i])
	if !applied {
		return c, false
	}
	sub.LastModified = now
	subjects := make([]state.Subject, len(c.Subjects))
	copy(subjects, c.Subjects)
	subjects[i] = sub
	c.Subjects = subjects
	return c, true
}

// withNote replaces note j with fn's result, copying the note slice. The
// subject is already a private copy when this runs inside withSubject.
func withNote(sub state.Subject, j int, fn func(state.Note) (state.Note, bool)) (state.Subject, bool) {
	note, applied := fn(sub.Notes[j])
	if !applied {
		return sub, false
	}
	notes := make([]state.Note, len(sub.Notes))
	copy(notes, sub.Notes)
	notes[j] = note
	sub.Notes = notes
	return sub, true
}

// withPageList resolves the subject/note path and applies fn to the note,
// touching the owning subject on success.
func withPageList(c state.ContentState, subjectID, noteID uuid.UUID, now time.Time, fn func(state.Note) (state.Note, bool)) (state.ContentState, bool) {
	i := c.SubjectIndex(subjectID)
	if i < 0 {
		return c, false
	}
	return withSubject(c, i, now, func(sub state.Subject) (state.Subject, bool) {
		j := sub.NoteIndex(noteID)
		if j < 0 {
			return sub, false
		}
		return withNote(sub, j, fn)
	})
}

// moveNote removes the note from its current subject and appends it to the
// destination, touching both subjects.
func moveNote(c state.ContentState, act action.MoveNote, now time.Time) (state.ContentState, bool) {
	fi := c.SubjectIndex(act.FromSubjectID)
	ti := c.SubjectIndex(act.ToSubjectID)
	if fi < 0 || ti < 0 || fi == ti {
		return c, false
	}
	j := c.Subjects[fi].NoteIndex(act.NoteID)
	if j < 0 {
		return c, false
	}

	subjects := make([]state.Subject, len(c.Subjects))
	copy(subjects, c.Subjects)

	from := subjects[fi]
	note := from.Notes[j]
	notes := make([]state.Note, 0, len(from.Notes)-1)
	notes = append(notes, from.Notes[:j]...)
	notes = append(notes, from.Notes[j+1:]...)
	from.Notes = notes
	from.LastModified = now
	subjects[fi] = from

	to := subjects[ti]
	toNotes := make([]state.Note, len(to.Notes), len(to.Notes)+1)
	copy(toNotes, to.Notes)
	to.Notes = append(toNotes, note)
	to.LastModified = now
	subjects[ti] = to

	c.Subjects = subjects
	return c, true
}

// renumber rewrites PageNumber to match array order.
func renumber(pages []state.Page) {
	for i := range pages {
		pages[i].PageNumber = i + 1
	}
}
