package persist

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/event"
	"github.com/inklet/inklet/internal/event/events"
	"github.com/inklet/inklet/internal/state"
)

// fakeSaver records saves without touching disk.
type fakeSaver struct {
	mu       sync.Mutex
	contents []state.ContentState
	settings []state.SettingsState
}

func (f *fakeSaver) SaveContent(_ context.Context, c state.ContentState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contents = append(f.contents, c)
	return nil
}

func (f *fakeSaver) SaveSettings(_ context.Context, st state.SettingsState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = append(f.settings, st)
	return nil
}

func (f *fakeSaver) contentSaves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contents)
}

func (f *fakeSaver) settingsSaves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.settings)
}

func contentState(n int) state.AppState {
	s := state.Default()
	for i := 0; i < n; i++ {
		s.Content.Subjects = append(s.Content.Subjects, state.Subject{ID: uuid.New()})
	}
	return s
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestMiddleware_DebouncesContentSaves(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewBus()
	m := NewMiddleware(saver, bus, WithDelay(30*time.Millisecond))

	prev := contentState(0)
	add := action.AddSubject{Subject: state.Subject{ID: uuid.New()}}

	// A burst of content mutations coalesces into one save of the last
	// snapshot.
	m.AfterDispatch(add, prev, contentState(1))
	m.AfterDispatch(add, contentState(1), contentState(2))
	m.AfterDispatch(add, contentState(2), contentState(3))

	waitFor(t, func() bool { return saver.contentSaves() == 1 })

	saver.mu.Lock()
	got := len(saver.contents[0].Subjects)
	saver.mu.Unlock()
	if got != 3 {
		t.Errorf("expected last snapshot with 3 subjects saved, got %d", got)
	}
}

func TestMiddleware_PublishesSaveCompleted(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewBus()
	m := NewMiddleware(saver, bus, WithDelay(10*time.Millisecond))

	var mu sync.Mutex
	var completed []events.SaveCompleted
	event.Subscribe(bus, func(ev events.SaveCompleted) {
		mu.Lock()
		completed = append(completed, ev)
		mu.Unlock()
	})

	m.AfterDispatch(action.AddSubject{}, contentState(0), contentState(1))

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(completed) == 1
	})

	mu.Lock()
	defer mu.Unlock()
	if completed[0].Slice != "content" {
		t.Errorf("expected slice content, got %q", completed[0].Slice)
	}
	if completed[0].Err != nil {
		t.Errorf("expected nil error, got %v", completed[0].Err)
	}
}

func TestMiddleware_SettingsSaveImmediate(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewBus()
	m := NewMiddleware(saver, bus, WithDelay(time.Hour))

	next := state.Default()
	next.Settings.DebugLogging = true
	m.AfterDispatch(action.SetDebugLogging{Enabled: true}, state.Default(), next)

	waitFor(t, func() bool { return saver.settingsSaves() == 1 })
	if saver.contentSaves() != 0 {
		t.Errorf("expected no content save for a settings action, got %d", saver.contentSaves())
	}
}

func TestMiddleware_NavigationDoesNotSave(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewBus()
	m := NewMiddleware(saver, bus, WithDelay(10*time.Millisecond))

	m.AfterDispatch(action.SetSearchText{Text: "x"}, state.Default(), state.Default())
	m.Flush()

	if saver.contentSaves() != 0 || saver.settingsSaves() != 0 {
		t.Error("expected no saves for a UI-only action")
	}
}

func TestMiddleware_AutoSaveDisabled(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewBus()
	m := NewMiddleware(saver, bus, WithDelay(10*time.Millisecond))

	next := contentState(1)
	next.Settings.AutoSaveEnabled = false
	m.AfterDispatch(action.AddSubject{}, contentState(0), next)
	m.Flush()

	if saver.contentSaves() != 0 {
		t.Errorf("expected no save with autosave off, got %d", saver.contentSaves())
	}
}

func TestMiddleware_FlushSavesPending(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewBus()
	m := NewMiddleware(saver, bus, WithDelay(time.Hour))

	m.AfterDispatch(action.AddSubject{}, contentState(0), contentState(1))
	m.Flush()

	if saver.contentSaves() != 1 {
		t.Errorf("expected Flush to save pending content, got %d saves", saver.contentSaves())
	}

	// Nothing pending: Flush is a no-op.
	m.Flush()
	if saver.contentSaves() != 1 {
		t.Errorf("expected no extra save, got %d", saver.contentSaves())
	}
}
