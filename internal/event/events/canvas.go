package events

import (
	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/event"
)

// Canvas events are published by the drawing layer. They are domain events,
// not state changes: the store does not consume them, but subsystems like
// thumbnail generation and the legacy bridge do.

// DrawingStarted is published when the user begins a stroke on a page.
type DrawingStarted struct {
	// PageID identifies the page being drawn on.
	PageID uuid.UUID
}

// EventDescription implements event.Event.
func (DrawingStarted) EventDescription() string { return "canvas.drawing.started" }

// DrawingEnded is published when the active stroke ends.
type DrawingEnded struct {
	// PageID identifies the page that was drawn on.
	PageID uuid.UUID
}

// EventDescription implements event.Event.
func (DrawingEnded) EventDescription() string { return "canvas.drawing.ended" }

// ThumbnailInvalidated is published when a note's cached thumbnail no
// longer matches its content and must be regenerated.
type ThumbnailInvalidated struct {
	// NoteID identifies the note whose thumbnail is stale.
	NoteID uuid.UUID
}

// EventDescription implements event.Event.
func (ThumbnailInvalidated) EventDescription() string { return "canvas.thumbnail.invalidated" }

// CanvasReady is published when a canvas view finishes loading. The view
// itself is externally owned; the event carries an opaque handle issued by
// the core's HandleTable rather than the view object.
type CanvasReady struct {
	// Canvas resolves to the ready canvas via the handle table.
	Canvas event.Handle
}

// EventDescription implements event.Event.
func (CanvasReady) EventDescription() string { return "canvas.ready" }
