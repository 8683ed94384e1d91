package event

import "sync"

// registry stores subscriptions organized by event type, preserving
// registration order within each type.
type registry struct {
	mu   sync.RWMutex
	subs map[Type][]*Subscription
}

func newRegistry() *registry {
	return &registry{
		subs: make(map[Type][]*Subscription),
	}
}

// add appends a subscription under its event type.
func (r *registry) add(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[sub.eventType] = append(r.subs[sub.eventType], sub)
}

// remove drops a subscription by identity. Empty type entries are cleaned up
// so ActiveTypes reflects only live registrations.
func (r *registry) remove(sub *Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.subs[sub.eventType]
	for i, s := range subs {
		if s.id == sub.id {
			r.subs[sub.eventType] = append(subs[:i:i], subs[i+1:]...)
			if len(r.subs[sub.eventType]) == 0 {
				delete(r.subs, sub.eventType)
			}
			return true
		}
	}
	return false
}

// snapshot returns a copy of the subscriptions for a type, in registration
// order. Publish iterates the copy so callbacks may subscribe or cancel
// without invalidating the in-flight pass.
func (r *registry) snapshot(t Type) []*Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.subs[t]
	if len(subs) == 0 {
		return nil
	}
	result := make([]*Subscription, len(subs))
	copy(result, subs)
	return result
}

// types returns all event types with at least one registration.
func (r *registry) types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.subs) == 0 {
		return nil
	}
	types := make([]Type, 0, len(r.subs))
	for t := range r.subs {
		types = append(types, t)
	}
	return types
}

// count returns the total number of registrations across all types.
func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, subs := range r.subs {
		n += len(subs)
	}
	return n
}

// clear removes every registration and returns the removed subscriptions so
// the caller can mark them cancelled.
func (r *registry) clear() []*Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []*Subscription
	for _, subs := range r.subs {
		removed = append(removed, subs...)
	}
	r.subs = make(map[Type][]*Subscription)
	return removed
}
