package reduce

import (
	"testing"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

func TestReduce_NilAction(t *testing.T) {
	s := fixture()
	next, applied := Reduce(s, nil, t1)
	if applied {
		t.Error("expected nil action to be ignored")
	}
	if len(next.Content.Subjects) != len(s.Content.Subjects) {
		t.Error("expected state unchanged")
	}
}

func TestReduce_Navigation(t *testing.T) {
	s := fixture()
	sel := state.Selection{SubjectID: uuid.New(), NoteID: uuid.New()}

	s, _ = Reduce(s, action.NavigateTo{Target: state.NavPageCanvas}, t1)
	s, _ = Reduce(s, action.SetSidebarVisible{Visible: false}, t1)
	s, _ = Reduce(s, action.SetGridVisible{Visible: true}, t1)
	s, _ = Reduce(s, action.SetSelection{Selection: sel}, t1)
	s, _ = Reduce(s, action.SetSearchText{Text: "calc"}, t1)

	ui := s.UI
	if ui.Nav != state.NavPageCanvas {
		t.Errorf("expected nav page-canvas, got %s", ui.Nav)
	}
	if ui.SidebarVisible {
		t.Error("expected sidebar hidden")
	}
	if !ui.GridVisible {
		t.Error("expected grid visible")
	}
	if ui.Selection != sel {
		t.Error("expected selection replaced")
	}
	if ui.SearchText != "calc" {
		t.Errorf("expected search text calc, got %q", ui.SearchText)
	}
}

func TestReduce_NavigationLeavesContentAlone(t *testing.T) {
	s := fixture()
	before := s.Content.Subjects[0].LastModified

	next, applied := Reduce(s, action.NavigateTo{Target: state.NavNoteGrid}, t1)
	if !applied {
		t.Fatal("expected navigation to apply")
	}
	if !next.Content.Subjects[0].LastModified.Equal(before) {
		t.Error("expected UI action to not touch content timestamps")
	}
}

func TestReduce_Settings(t *testing.T) {
	s := fixture()

	s, _ = Reduce(s, action.SetAutoSaveEnabled{Enabled: false}, t1)
	s, _ = Reduce(s, action.SetThumbnailsEnabled{Enabled: false}, t1)
	s, _ = Reduce(s, action.SetDebugLogging{Enabled: true}, t1)
	s, _ = Reduce(s, action.SetDefaultTemplate{TemplateID: "dotted"}, t1)

	if s.Settings.AutoSaveEnabled {
		t.Error("expected autosave disabled")
	}
	if s.Settings.ThumbnailsEnabled {
		t.Error("expected thumbnails disabled")
	}
	if !s.Settings.DebugLogging {
		t.Error("expected debug logging enabled")
	}
	if s.Settings.DefaultTemplateID != "dotted" {
		t.Errorf("expected default template dotted, got %q", s.Settings.DefaultTemplateID)
	}
}
