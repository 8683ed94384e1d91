package store

import (
	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/state"
)

// Middleware wraps the dispatch pipeline. BeforeDispatch runs before the
// reducer, AfterDispatch after the new state is installed. Hooks may
// inspect the action and trigger external side effects, but must not call
// Dispatch synchronously from within their own invocation.
type Middleware interface {
	// BeforeDispatch is called with the action and the state it will be
	// applied to.
	BeforeDispatch(a action.Action, current state.AppState)

	// AfterDispatch is called with the action and the states before and
	// after reduction.
	AfterDispatch(a action.Action, previous, next state.AppState)
}

// MiddlewareFuncs adapts plain functions to Middleware. Nil fields are
// skipped.
type MiddlewareFuncs struct {
	Before func(a action.Action, current state.AppState)
	After  func(a action.Action, previous, next state.AppState)
}

// BeforeDispatch implements Middleware.
func (m MiddlewareFuncs) BeforeDispatch(a action.Action, current state.AppState) {
	if m.Before != nil {
		m.Before(a, current)
	}
}

// AfterDispatch implements Middleware.
func (m MiddlewareFuncs) AfterDispatch(a action.Action, previous, next state.AppState) {
	if m.After != nil {
		m.After(a, previous, next)
	}
}
