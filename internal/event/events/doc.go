// Package events defines the concrete event types published on the bus.
//
// Events are grouped by the subsystem that publishes them: the store
// publishes state events, the canvas layer publishes drawing events, and
// the persistence middleware publishes save events. Every type implements
// event.Event via a stable EventDescription string.
package events
