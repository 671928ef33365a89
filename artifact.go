package pager

import "context"

// ArtifactRef identifies the writable artifact holding the rendered page.
type ArtifactRef string

// ArtifactSink owns the lifecycle of the rendered artifact. Update and
// Delete return ErrNotFound (possibly wrapped) when the artifact no
// longer exists; that is the only error class the controller treats as
// recoverable. Updates have update-in-place semantics, never a new
// artifact.
type ArtifactSink interface {
	Create(ctx context.Context, view View) (ArtifactRef, error)
	Update(ctx context.Context, ref ArtifactRef, view View) error
	Delete(ctx context.Context, ref ArtifactRef) error
}

// Notifier delivers a transient notice to a single actor, never
// broadcast. Sinks may optionally implement it; the controller checks
// with a type assertion and skips the notice when unsupported.
type Notifier interface {
	Notify(ctx context.Context, actorID, text string) error
}
