package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/state"
)

// Selector derives a read-only view from a state snapshot. Selectors are
// re-evaluated on every access; nothing is cached.
type Selector[V any] func(state.AppState) V

// Select evaluates sel against the store's current state.
func Select[V any](s *Store, sel Selector[V]) V {
	return sel(s.State())
}

// SelectSubject returns the subject with the given ID.
func (s *Store) SelectSubject(id uuid.UUID) (state.Subject, bool) {
	return s.State().Content.Subject(id)
}

// SelectNote returns a note located by subject and note ID.
func (s *Store) SelectNote(subjectID, noteID uuid.UUID) (state.Note, bool) {
	sub, ok := s.State().Content.Subject(subjectID)
	if !ok {
		return state.Note{}, false
	}
	return sub.Note(noteID)
}

// SelectPage returns a page located by subject, note, and page ID.
func (s *Store) SelectPage(subjectID, noteID, pageID uuid.UUID) (state.Page, bool) {
	note, ok := s.SelectNote(subjectID, noteID)
	if !ok {
		return state.Page{}, false
	}
	return note.Page(pageID)
}

// SelectSelectedSubject resolves the UI selection to its subject.
func (s *Store) SelectSelectedSubject() (state.Subject, bool) {
	st := s.State()
	return st.Content.Subject(st.UI.Selection.SubjectID)
}

// SearchNotes returns the notes whose titles contain the query,
// case-insensitively, in subject order then note order. An empty query
// matches nothing.
func SearchNotes(query string) Selector[[]state.Note] {
	return func(st state.AppState) []state.Note {
		q := strings.ToLower(strings.TrimSpace(query))
		if q == "" {
			return nil
		}
		var matches []state.Note
		for _, sub := range st.Content.Subjects {
			for _, note := range sub.Notes {
				if strings.Contains(strings.ToLower(note.Title), q) {
					matches = append(matches, note)
				}
			}
		}
		return matches
	}
}
