package event

import "sync/atomic"

// Subscription represents one observer's interest in events of exactly one
// type. It is created by Subscribe and owned by the caller (or by a Manager
// on the caller's behalf).
type Subscription struct {
	id        uint64
	eventType Type
	deliver   func(Event)
	bus       *Bus
	cancelled atomic.Bool
}

// ID returns the unique, monotonically increasing subscription identifier.
func (s *Subscription) ID() uint64 {
	return s.id
}

// EventType returns the event type this subscription is registered under.
func (s *Subscription) EventType() Type {
	return s.eventType
}

// IsActive reports whether the subscription can still receive events.
func (s *Subscription) IsActive() bool {
	return s != nil && !s.cancelled.Load()
}

// Cancel removes the registration. It is idempotent: the second and later
// calls are no-ops. Cancelling from within a callback invoked by an
// in-progress Publish is safe; once Cancel returns, the callback will not
// be invoked again, including later in the same publish pass.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled.Swap(true) {
		return
	}
	s.bus.registry.remove(s)
}
