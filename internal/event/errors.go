package event

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrNilCallback is returned when a nil callback is passed to Subscribe.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrNilBus is returned when a nil bus is passed to Subscribe.
	ErrNilBus = errors.New("bus cannot be nil")
)
