package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pager"
)

// Interface compliance check.
var _ pager.EventSource = (*Source)(nil)

// Source is a test double for pager.EventSource.
// Set NextFn for custom behavior, or use Script to replay a fixed event
// sequence. CloseFn is nil-safe because teardown always calls Close.
type Source struct {
	NextFn  func(ctx context.Context) (pager.Event, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Source) Next(ctx context.Context) (pager.Event, error) {
	return s.NextFn(ctx)
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Source) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// Script returns a Source that replays events in order and then blocks
// until ctx is done, mirroring a live subscription that has gone quiet.
func Script(events ...pager.Event) *Source {
	ch := make(chan pager.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	return &Source{
		NextFn: func(ctx context.Context) (pager.Event, error) {
			select {
			case ev := <-ch:
				return ev, nil
			case <-ctx.Done():
				return pager.Event{}, ctx.Err()
			}
		},
	}
}

// Feed returns a Source driven by the given channel. Closing the
// channel ends the subscription with io.EOF.
func Feed(ch <-chan pager.Event) *Source {
	return &Source{
		NextFn: func(ctx context.Context) (pager.Event, error) {
			select {
			case ev, ok := <-ch:
				if !ok {
					return pager.Event{}, io.EOF
				}
				return ev, nil
			case <-ctx.Done():
				return pager.Event{}, ctx.Err()
			}
		},
	}
}
