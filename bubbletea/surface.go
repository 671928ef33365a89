package bubbletea

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pager"
	"github.com/google/uuid"
)

// Interface compliance checks.
var (
	_ pager.ArtifactSink = (*Surface)(nil)
	_ pager.EventSource  = (*Surface)(nil)
	_ pager.PromptSink   = (*Surface)(nil)
	_ pager.Notifier     = (*Surface)(nil)
)

// Surface bridges one terminal and one session. The controller calls
// it from the session goroutine; the model reads controller traffic via
// the msgs channel and feeds key-driven events back through Press.
//
// The terminal is a single-actor surface: every event carries the actor
// identity the model was constructed with, and prompts are implicitly
// scoped to that actor.
type Surface struct {
	msgs   chan tea.Msg
	events chan pager.Event

	mu      sync.Mutex
	closed  bool
	ref     pager.ArtifactRef
	deleted bool
}

// NewSurface creates an unbound Surface. Pass it to both the controller
// (as sink, source, and prompt sink) and the model.
func NewSurface() *Surface {
	return &Surface{
		msgs:   make(chan tea.Msg, 16),
		events: make(chan pager.Event, 16),
	}
}

// Create implements pager.ArtifactSink.
func (s *Surface) Create(ctx context.Context, view pager.View) (pager.ArtifactRef, error) {
	s.mu.Lock()
	ref := pager.ArtifactRef(uuid.NewString())
	s.ref = ref
	s.deleted = false
	s.mu.Unlock()

	if err := s.send(ctx, ViewMsg{Content: view.Content, Page: view.Page, Total: view.Total}); err != nil {
		return "", err
	}
	return ref, nil
}

// Update implements pager.ArtifactSink. It reports ErrNotFound once the
// artifact has been deleted.
func (s *Surface) Update(ctx context.Context, ref pager.ArtifactRef, view pager.View) error {
	s.mu.Lock()
	gone := s.deleted || ref != s.ref
	s.mu.Unlock()
	if gone {
		return pager.ErrNotFound
	}
	return s.send(ctx, ViewMsg{Content: view.Content, Page: view.Page, Total: view.Total})
}

// Delete implements pager.ArtifactSink.
func (s *Surface) Delete(ctx context.Context, ref pager.ArtifactRef) error {
	s.mu.Lock()
	if s.deleted || ref != s.ref {
		s.mu.Unlock()
		return pager.ErrNotFound
	}
	s.deleted = true
	s.mu.Unlock()
	return s.send(ctx, ClearMsg{})
}

// Discard marks the artifact deleted without a session call. It mimics
// an out-of-band deletion, e.g. by another surface.
func (s *Surface) Discard() {
	s.mu.Lock()
	s.deleted = true
	s.mu.Unlock()
}

// Notify implements pager.Notifier. The terminal has one actor, so the
// notice is simply shown in the status line.
func (s *Surface) Notify(ctx context.Context, actorID, text string) error {
	return s.send(ctx, NoticeMsg{Text: text})
}

// Next implements pager.EventSource. It returns io.EOF once the
// subscription has been closed.
func (s *Surface) Next(ctx context.Context) (pager.Event, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return pager.Event{}, io.EOF
		}
		return ev, nil
	case <-ctx.Done():
		return pager.Event{}, ctx.Err()
	}
}

// Close implements pager.EventSource. Safe to call more than once.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.events)
	return nil
}

// Press delivers a key-driven event to the controller. Events pressed
// after the subscription ended, or faster than the controller drains
// them, are dropped.
func (s *Surface) Press(ev pager.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
	}
}

// Open implements pager.PromptSink. The actor is fixed per surface, so
// actorID only travels for interface symmetry.
func (s *Surface) Open(ctx context.Context, actorID, label string) (string, error) {
	prompt := PromptMsg{Label: label, reply: make(chan promptReply, 1)}
	if err := s.send(ctx, prompt); err != nil {
		return "", err
	}

	select {
	case rep := <-prompt.reply:
		if rep.dismissed {
			return "", pager.ErrPromptDismissed
		}
		return rep.text, nil
	case <-ctx.Done():
		// Reclaim the modal; a late Submit lands in the buffered reply
		// channel and is never read.
		select {
		case s.msgs <- PromptTimeoutMsg{}:
		default:
		}
		return "", ctx.Err()
	}
}

// Messages exposes the controller-to-model channel for the model's
// listen command.
func (s *Surface) Messages() <-chan tea.Msg {
	return s.msgs
}

func (s *Surface) send(ctx context.Context, msg tea.Msg) error {
	select {
	case s.msgs <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
