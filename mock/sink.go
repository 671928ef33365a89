package mock

import (
	"context"

	"github.com/fwojciec/pager"
)

// Interface compliance checks.
var (
	_ pager.ArtifactSink = (*Sink)(nil)
	_ pager.ArtifactSink = (*NoticeSink)(nil)
	_ pager.Notifier     = (*NoticeSink)(nil)
)

// Sink is a test double for pager.ArtifactSink.
// Set the function fields for the methods you need. CreateFn and
// UpdateFn panic when nil to catch missing setup. DeleteFn is nil-safe
// (no-op) because most tests never exercise deletion.
type Sink struct {
	CreateFn func(ctx context.Context, view pager.View) (pager.ArtifactRef, error)
	UpdateFn func(ctx context.Context, ref pager.ArtifactRef, view pager.View) error
	DeleteFn func(ctx context.Context, ref pager.ArtifactRef) error
}

// Create delegates to CreateFn.
func (s *Sink) Create(ctx context.Context, view pager.View) (pager.ArtifactRef, error) {
	return s.CreateFn(ctx, view)
}

// Update delegates to UpdateFn.
func (s *Sink) Update(ctx context.Context, ref pager.ArtifactRef, view pager.View) error {
	return s.UpdateFn(ctx, ref, view)
}

// Delete delegates to DeleteFn. Returns nil when DeleteFn is not set.
func (s *Sink) Delete(ctx context.Context, ref pager.ArtifactRef) error {
	if s.DeleteFn == nil {
		return nil
	}
	return s.DeleteFn(ctx, ref)
}

// NoticeSink is a Sink that additionally implements pager.Notifier.
// Kept separate from Sink so tests can cover controllers talking to
// sinks without notice support.
type NoticeSink struct {
	Sink
	NotifyFn func(ctx context.Context, actorID, text string) error
}

// Notify delegates to NotifyFn. Returns nil when NotifyFn is not set.
func (s *NoticeSink) Notify(ctx context.Context, actorID, text string) error {
	if s.NotifyFn == nil {
		return nil
	}
	return s.NotifyFn(ctx, actorID, text)
}
