package event

import "reflect"

// Event is implemented by any immutable value that can travel on the Bus.
// An event carries no identity beyond its declared type; it is created at
// the publish call site, consumed synchronously by all current subscribers
// of its type, and then discarded.
type Event interface {
	// EventDescription returns a stable, human-readable name for the
	// event type, used for diagnostics and logging.
	EventDescription() string
}

// Type identifies a concrete event type on the bus.
type Type = reflect.Type

// TypeOf returns the bus type key for the event type T.
func TypeOf[T Event]() Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
