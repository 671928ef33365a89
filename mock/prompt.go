package mock

import (
	"context"

	"github.com/fwojciec/pager"
)

// Interface compliance check.
var _ pager.PromptSink = (*Prompt)(nil)

// Prompt is a test double for pager.PromptSink. OpenFn panics when nil
// to catch missing setup.
type Prompt struct {
	OpenFn func(ctx context.Context, actorID, label string) (string, error)
}

// Open delegates to OpenFn.
func (p *Prompt) Open(ctx context.Context, actorID, label string) (string, error) {
	return p.OpenFn(ctx, actorID, label)
}
