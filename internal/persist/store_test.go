package persist

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/state"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testContent() state.ContentState {
	created := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	modified := time.Date(2026, 1, 6, 8, 0, 0, 0, time.UTC)
	return state.ContentState{
		Subjects: []state.Subject{
			{
				ID:           uuid.New(),
				Name:         "Math",
				Color:        "#ff0000",
				CreatedAt:    created,
				LastModified: modified,
				Notes: []state.Note{
					{
						ID:         uuid.New(),
						Title:      "Calculus",
						TemplateID: "ruled",
						CreatedAt:  created,
						Pages: []state.Page{
							{ID: uuid.New(), PageNumber: 1, TemplateID: "grid"},
							{ID: uuid.New(), PageNumber: 2},
						},
					},
					{ID: uuid.New(), Title: "Algebra", CreatedAt: created},
				},
			},
			{
				ID:        uuid.New(),
				Name:      "History",
				CreatedAt: created,
			},
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	content := testContent()

	if err := s.SaveContent(ctx, content); err != nil {
		t.Fatalf("SaveContent() failed: %v", err)
	}
	loaded, err := s.LoadContent(ctx)
	if err != nil {
		t.Fatalf("LoadContent() failed: %v", err)
	}

	if len(loaded.Subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(loaded.Subjects))
	}
	if loaded.Subjects[0].ID != content.Subjects[0].ID {
		t.Error("expected subject order preserved")
	}
	if loaded.Subjects[0].Name != "Math" || loaded.Subjects[0].Color != "#ff0000" {
		t.Errorf("unexpected subject fields: %+v", loaded.Subjects[0])
	}
	if !loaded.Subjects[0].LastModified.Equal(content.Subjects[0].LastModified) {
		t.Error("expected LastModified preserved")
	}

	notes := loaded.Subjects[0].Notes
	if len(notes) != 2 || notes[0].Title != "Calculus" || notes[1].Title != "Algebra" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if notes[0].TemplateID != "ruled" {
		t.Errorf("expected template ruled, got %q", notes[0].TemplateID)
	}

	pages := notes[0].Pages
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].ID != content.Subjects[0].Notes[0].Pages[0].ID {
		t.Error("expected page order preserved")
	}
	if pages[0].PageNumber != 1 || pages[1].PageNumber != 2 {
		t.Errorf("unexpected page numbers: %d, %d", pages[0].PageNumber, pages[1].PageNumber)
	}
}

func TestStore_SaveReplacesSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveContent(ctx, testContent()); err != nil {
		t.Fatalf("SaveContent() failed: %v", err)
	}

	// A smaller snapshot must fully replace the old one, including child
	// rows removed via cascade.
	replacement := state.ContentState{
		Subjects: []state.Subject{{ID: uuid.New(), Name: "Only"}},
	}
	if err := s.SaveContent(ctx, replacement); err != nil {
		t.Fatalf("SaveContent() failed: %v", err)
	}

	loaded, err := s.LoadContent(ctx)
	if err != nil {
		t.Fatalf("LoadContent() failed: %v", err)
	}
	if len(loaded.Subjects) != 1 || loaded.Subjects[0].Name != "Only" {
		t.Errorf("expected replacement snapshot, got %+v", loaded.Subjects)
	}
	if loaded.NoteCount() != 0 || loaded.PageCount() != 0 {
		t.Error("expected cascade to drop orphaned notes and pages")
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.LoadContent(context.Background())
	if err != nil {
		t.Fatalf("LoadContent() failed: %v", err)
	}
	if len(loaded.Subjects) != 0 {
		t.Errorf("expected empty content, got %d subjects", len(loaded.Subjects))
	}
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Missing rows fall back to defaults.
	st, err := s.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if !st.AutoSaveEnabled {
		t.Error("expected default autosave enabled")
	}

	st.AutoSaveEnabled = false
	st.DebugLogging = true
	st.DefaultTemplateID = "dotted"
	if err := s.SaveSettings(ctx, st); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	loaded, err := s.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded.AutoSaveEnabled {
		t.Error("expected autosave disabled")
	}
	if !loaded.DebugLogging {
		t.Error("expected debug logging enabled")
	}
	if loaded.DefaultTemplateID != "dotted" {
		t.Errorf("expected template dotted, got %q", loaded.DefaultTemplateID)
	}
}
