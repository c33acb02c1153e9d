package domain

import "errors"

var (
	// ErrSubscriptionFailed is returned when subscription to events fails
	ErrSubscriptionFailed = errors.New("subscription failed")

	// ErrEntityNotFound is returned when a handler references a derived entity
	// that has never been projected (out-of-order delivery or upstream bug).
	// Handlers must surface it so the engine halts instead of skipping.
	ErrEntityNotFound = errors.New("referenced entity not found")

	// ErrStaleEvent is returned when an event's ordering triple is not
	// strictly after the persisted cursor
	ErrStaleEvent = errors.New("event at or before cursor")

	// ErrUnknownEvent is returned when an event payload has no registered handler
	ErrUnknownEvent = errors.New("unknown event type")
)
