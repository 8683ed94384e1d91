package persist

import (
	"context"
	"sync"
	"time"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/event"
	"github.com/inklet/inklet/internal/event/events"
	"github.com/inklet/inklet/internal/state"
)

// Saver is the outbound persistence interface the middleware needs.
type Saver interface {
	SaveContent(ctx context.Context, c state.ContentState) error
	SaveSettings(ctx context.Context, st state.SettingsState) error
}

// Middleware schedules persistence after dispatches. Content mutations are
// debounced: a burst of edits produces one save, delay after the last one.
// Settings changes save immediately. All disk work runs on background
// goroutines; the dispatch call never blocks on I/O. Outcomes surface as
// SaveCompleted events on the bus.
type Middleware struct {
	saver   Saver
	bus     *event.Bus
	delay   time.Duration
	timeout time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *state.ContentState
	wg      sync.WaitGroup
}

// MiddlewareOption configures the save middleware.
type MiddlewareOption func(*Middleware)

// WithDelay sets the content save debounce window.
func WithDelay(d time.Duration) MiddlewareOption {
	return func(m *Middleware) {
		m.delay = d
	}
}

// WithTimeout bounds each background save.
func WithTimeout(d time.Duration) MiddlewareOption {
	return func(m *Middleware) {
		m.timeout = d
	}
}

// NewMiddleware creates the save middleware.
func NewMiddleware(saver Saver, bus *event.Bus, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		saver:   saver,
		bus:     bus,
		delay:   2 * time.Second,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BeforeDispatch implements store.Middleware.
func (m *Middleware) BeforeDispatch(action.Action, state.AppState) {}

// AfterDispatch implements store.Middleware.
func (m *Middleware) AfterDispatch(a action.Action, previous, next state.AppState) {
	switch {
	case a.Category() == action.CategorySettings:
		m.saveSettings(next.Settings)
	case a.Category().MutatesContent() && next.Settings.AutoSaveEnabled:
		m.schedule(next.Content)
	}
}

// schedule records the latest content snapshot and arms the debounce
// timer.
func (m *Middleware) schedule(c state.ContentState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = &c
	if m.timer == nil {
		m.timer = time.AfterFunc(m.delay, m.saveContent)
	} else {
		m.timer.Reset(m.delay)
	}
}

// saveContent runs on the timer goroutine.
func (m *Middleware) saveContent() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	if pending == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	err := m.saver.SaveContent(ctx, *pending)
	m.bus.Publish(events.SaveCompleted{Slice: "content", Err: err})
}

func (m *Middleware) saveSettings(st state.SettingsState) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		err := m.saver.SaveSettings(ctx, st)
		m.bus.Publish(events.SaveCompleted{Slice: "settings", Err: err})
	}()
}

// Flush persists any pending content immediately and waits for in-flight
// settings saves. Call at shutdown.
func (m *Middleware) Flush() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.mu.Unlock()

	m.saveContent()
	m.wg.Wait()
}
