package events

import "github.com/inklet/inklet/internal/state"

// StateChanged is published by the store after every dispatch, once the new
// state has been installed and post-dispatch middleware has run. Observers
// receive the full state snapshot and re-derive whatever view they render.
type StateChanged struct {
	// State is the new application state.
	State state.AppState
}

// EventDescription implements event.Event.
func (StateChanged) EventDescription() string { return "app.state.changed" }

// ActionIgnored is published when the reducer pipeline receives an action
// that cannot apply, such as an update referencing a deleted entity. The
// mutation degrades to a no-op; this event is the diagnostic trace of it.
type ActionIgnored struct {
	// Action is the ignored action's description string.
	Action string
}

// EventDescription implements event.Event.
func (ActionIgnored) EventDescription() string { return "store.action.ignored" }
