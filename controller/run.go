package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/pager"
)

// sourceResult carries one EventSource read across the pump channel.
type sourceResult struct {
	event pager.Event
	err   error
}

// run is the single owner goroutine for one session. Every state
// mutation after Start happens here, which makes the one-event-at-a-time
// guarantee mechanically obvious.
func (c *Controller) run(ctx context.Context, s *pager.Session, source pager.EventSource, h *Handle) {
	defer source.Close()

	pumpCtx, cancelPump := context.WithCancel(ctx)
	defer cancelPump()

	events := make(chan sourceResult)
	go pump(pumpCtx, source, events)

	timer := time.NewTimer(time.Until(s.Deadline))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Status = pager.StatusExpired
			h.finish(ctx.Err())
			return

		case <-h.closeCh:
			c.closeSession(ctx, s)
			h.finish(nil)
			return

		case <-timer.C:
			// A fire racing a terminal transition loses; the status
			// check makes the timer the no-op side.
			if s.Status.Terminal() {
				continue
			}
			c.expire(ctx, s, h)
			return

		case res := <-events:
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					// The transport retired the subscription on its own
					// schedule; same outcome as an idle expiry.
					c.expire(ctx, s, h)
					return
				}
				s.Status = pager.StatusExpired
				h.finish(fmt.Errorf("event source: %w", res.err))
				return
			}
			done, err := c.handleEvent(ctx, s, res.event)
			if err != nil {
				s.Status = pager.StatusExpired
				h.finish(err)
				return
			}
			if done {
				h.finish(nil)
				return
			}
		}
	}
}

// handleEvent applies one event. It returns done=true when the session
// reached a terminal state, and a non-nil error only for faults that
// must retire the session.
func (c *Controller) handleEvent(ctx context.Context, s *pager.Session, ev pager.Event) (done bool, err error) {
	if s.Status.Terminal() {
		c.log.Debug("event after terminal state dropped", "session", s.ID, "action", ev.Action)
		return true, nil
	}

	if ev.ActorID != s.OwnerID {
		// Acknowledged so the actor's client doesn't hang, but no state
		// change; the notice goes to that actor only.
		c.notify(ctx, ev.ActorID, "this isn't your session")
		return false, nil
	}

	switch ev.Action {
	case pager.ActionPrev:
		return false, c.navigate(ctx, s, s.State.Current-1)
	case pager.ActionNext:
		return false, c.navigate(ctx, s, s.State.Current+1)
	case pager.ActionHome:
		return false, c.navigate(ctx, s, 0)
	case pager.ActionClose:
		c.closeSession(ctx, s)
		return true, nil
	case pager.ActionJumpOpen:
		return false, c.jump(ctx, s, ev.ActorID)
	default:
		c.log.Debug("unrecognized action dropped", "session", s.ID, "action", ev.Action)
		return false, nil
	}
}

// navigate moves to the clamped candidate page. Landing on the current
// page is an acknowledged no-op and does not re-render.
func (c *Controller) navigate(ctx context.Context, s *pager.Session, requested int) error {
	candidate := pager.ClampPage(requested, s.State.Total)
	if candidate == s.State.Current {
		return nil
	}
	s.State.Current = candidate
	return c.commit(ctx, s)
}

// closeSession performs the explicit-close teardown: terminal status,
// artifact deletion, no end-of-session commit.
func (c *Controller) closeSession(ctx context.Context, s *pager.Session) {
	s.Status = pager.StatusClosed
	if s.ArtifactGone {
		return
	}
	if err := c.sink.Delete(ctx, s.Artifact); err != nil && !errors.Is(err, pager.ErrNotFound) {
		c.log.Debug("artifact delete failed", "session", s.ID, "error", err)
	}
}

// expire performs the idle-timeout teardown: terminal status plus one
// final commit so the visible page matches the state at expiry.
func (c *Controller) expire(ctx context.Context, s *pager.Session, h *Handle) {
	s.Status = pager.StatusExpired
	if err := c.commit(ctx, s); err != nil {
		h.finish(fmt.Errorf("final commit: %w", err))
		return
	}
	h.finish(nil)
}

// notify delivers an actor-scoped notice when the sink supports it.
func (c *Controller) notify(ctx context.Context, actorID, text string) {
	n, ok := c.sink.(pager.Notifier)
	if !ok {
		return
	}
	if err := n.Notify(ctx, actorID, text); err != nil {
		c.log.Debug("notice delivery failed", "actor", actorID, "error", err)
	}
}

// pump forwards source reads to the session goroutine. It exits on any
// source error (including io.EOF) or when ctx is cancelled.
func pump(ctx context.Context, source pager.EventSource, out chan<- sourceResult) {
	for {
		ev, err := source.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- sourceResult{err: err}:
			case <-ctx.Done():
			}
			return
		}
		select {
		case out <- sourceResult{event: ev}:
		case <-ctx.Done():
			return
		}
	}
}
