package store

import (
	"sync"
	"time"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/event"
	"github.com/inklet/inklet/internal/event/events"
	"github.com/inklet/inklet/internal/state"
	"github.com/inklet/inklet/internal/store/reduce"
)

// LogFunc receives diagnostic log lines. The default discards them.
type LogFunc func(format string, args ...any)

// Store owns the current application state. All mutation flows through
// Dispatch; every other component sees immutable snapshots.
type Store struct {
	bus        *event.Bus
	middleware []Middleware
	now        func() time.Time
	logf       LogFunc

	mu      sync.RWMutex
	current state.AppState

	// dispatching guards against middleware re-entering Dispatch from
	// its own hooks. Dispatch is main-loop bound, so a plain bool is
	// enough.
	dispatching bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source used for touch propagation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogf sets the diagnostic logger.
func WithLogf(logf LogFunc) Option {
	return func(s *Store) {
		s.logf = logf
	}
}

// New creates a store with the given initial state. The bus receives a
// StateChanged publish after every dispatch.
func New(bus *event.Bus, initial state.AppState, opts ...Option) *Store {
	s := &Store{
		bus:     bus,
		current: initial,
		now:     func() time.Time { return time.Now().UTC() },
		logf:    func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterMiddleware appends m to the ordered chain. Order is significant:
// hooks run in registration order on both sides of the reducer.
func (s *Store) RegisterMiddleware(m Middleware) {
	if m == nil {
		return
	}
	s.middleware = append(s.middleware, m)
}

// State returns the current state snapshot.
func (s *Store) State() state.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Dispatch runs a through the pipeline: pre-dispatch hooks, the reducer,
// post-dispatch hooks, then a StateChanged publish. Invalid actions never
// raise an error; a mutation that cannot apply leaves the state unchanged
// and publishes an ActionIgnored diagnostic instead.
//
// Dispatch must not be re-entered from middleware hooks or bus callbacks
// it triggers. A reentrant call is dropped and logged.
func (s *Store) Dispatch(a action.Action) {
	if a == nil {
		return
	}
	if s.dispatching {
		s.logf("store: reentrant dispatch of %q dropped", a.Description())
		return
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()

	previous := s.State()

	for _, m := range s.middleware {
		m.BeforeDispatch(a, previous)
	}

	next, applied := reduce.Reduce(previous, a, s.now())

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	for _, m := range s.middleware {
		m.AfterDispatch(a, previous, next)
	}

	if !applied {
		s.bus.Publish(events.ActionIgnored{Action: a.Description()})
	}
	s.bus.Publish(events.StateChanged{State: next})
}
