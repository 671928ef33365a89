package pager

import "context"

// PromptSink collects one line of text from a single actor. Open blocks
// until that actor submits, the actor dismisses the prompt
// (ErrPromptDismissed), or ctx expires. The prompt is scoped to the one
// actor; submissions from anyone else never resolve it.
type PromptSink interface {
	Open(ctx context.Context, actorID, label string) (string, error)
}
