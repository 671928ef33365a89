// Package bubbletea provides a terminal surface for pagination
// sessions: a Bubble Tea model that shows the rendered artifact and a
// Surface that exposes the model to the controller as its artifact
// sink, event source, prompt sink, and notifier.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionFunc starts the pagination session against the surface and
// blocks until it retires, returning the session fault, if any.
type SessionFunc func() error

// Run creates and runs the Bubble Tea program. It blocks until the
// program exits. The context is used for graceful shutdown — when
// cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ViewMsg delivers a new artifact view to the model.
type ViewMsg struct {
	Content string
	Page    int
	Total   int
}

// ClearMsg tells the model the artifact was deleted.
type ClearMsg struct{}

// NoticeMsg delivers a transient actor-scoped notice to the model.
type NoticeMsg struct {
	Text string
}

// PromptMsg opens the jump modal. The model resolves it with Submit or
// Dismiss; an unresolved prompt is reclaimed by PromptTimeoutMsg.
type PromptMsg struct {
	Label string
	reply chan promptReply
}

// Submit resolves the prompt with the actor's input.
func (p PromptMsg) Submit(text string) {
	select {
	case p.reply <- promptReply{text: text}:
	default:
	}
}

// Dismiss resolves the prompt as abandoned.
func (p PromptMsg) Dismiss() {
	select {
	case p.reply <- promptReply{dismissed: true}:
	default:
	}
}

// PromptTimeoutMsg tells the model the prompt expired on the controller
// side and the modal should close without resolving.
type PromptTimeoutMsg struct{}

// SessionDoneMsg signals that the session retired.
type SessionDoneMsg struct {
	Err error
}

type promptReply struct {
	text      string
	dismissed bool
}
