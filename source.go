package pager

import "context"

// EventSource delivers session-scoped events in arrival order. Next
// blocks until an event is available and returns io.EOF once the
// subscription has ended. Close ends the subscription early; a blocked
// Next is released by its context.
type EventSource interface {
	Next(ctx context.Context) (Event, error)
	Close() error
}
