package events

// SaveCompleted is published by the persistence middleware when a
// background save finishes, successfully or not. Saves are fire-and-forget
// from the dispatch pipeline's perspective; this event is how interested
// observers learn the outcome.
type SaveCompleted struct {
	// Slice names the persisted state slice ("content" or "settings").
	Slice string

	// Err is nil on success.
	Err error
}

// EventDescription implements event.Event.
func (SaveCompleted) EventDescription() string { return "persist.save.completed" }
