package event

import (
	"reflect"
	"sort"
	"sync/atomic"
)

// Bus is the type-indexed event dispatcher. The zero value is not usable;
// construct with NewBus. A Bus is safe for use from multiple goroutines,
// but delivery itself is synchronous: callbacks run inline on the
// publisher's goroutine.
type Bus struct {
	registry *registry
	nextID   atomic.Uint64
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		registry: newRegistry(),
	}
}

// Publish delivers ev to every subscription currently registered for its
// concrete type, in registration order. Publishing a type with no
// subscribers is a no-op. Callbacks may publish further events; nested
// publishes run depth-first and complete before the outer Publish returns.
func (b *Bus) Publish(ev Event) {
	if ev == nil {
		return
	}
	subs := b.registry.snapshot(reflect.TypeOf(ev))
	for _, sub := range subs {
		// Re-check per delivery: a callback earlier in this pass may
		// have cancelled a later subscription.
		if !sub.IsActive() {
			continue
		}
		sub.deliver(ev)
	}
}

// Subscribe registers callback for events of type T and returns the handle
// that cancels exactly this registration. Multiple subscriptions to the
// same type are all retained and all invoked.
func Subscribe[T Event](b *Bus, callback func(T)) (*Subscription, error) {
	if b == nil {
		return nil, ErrNilBus
	}
	if callback == nil {
		return nil, ErrNilCallback
	}
	sub := &Subscription{
		id:        b.nextID.Add(1),
		eventType: TypeOf[T](),
		bus:       b,
		deliver: func(ev Event) {
			callback(ev.(T))
		},
	}
	b.registry.add(sub)
	return sub, nil
}

// Unsubscribe cancels the given subscription. Equivalent to sub.Cancel;
// safe for nil and already-cancelled subscriptions.
func (b *Bus) Unsubscribe(sub *Subscription) {
	sub.Cancel()
}

// ActiveEventTypes returns the sorted type identifiers of every event type
// with at least one live subscription. Diagnostic introspection only.
func (b *Bus) ActiveEventTypes() []string {
	types := b.registry.types()
	if len(types) == 0 {
		return nil
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// SubscriptionCount returns the number of live subscriptions across all
// event types.
func (b *Bus) SubscriptionCount() int {
	return b.registry.count()
}

// Clear cancels and drops every registration across every type. Intended
// for test teardown and debug tooling.
func (b *Bus) Clear() {
	for _, sub := range b.registry.clear() {
		sub.cancelled.Store(true)
	}
}
