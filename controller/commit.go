package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/pager"
)

// commit re-renders the current page and writes it to the session's
// artifact in place. A missing artifact is absorbed: the session is
// flagged and every later commit is skipped instead of re-attempted.
// Any other sink failure is fatal and propagates to the caller.
func (c *Controller) commit(ctx context.Context, s *pager.Session) error {
	if s.ArtifactGone {
		c.log.Debug("commit skipped, artifact gone", "session", s.ID)
		return nil
	}

	window := s.List.Window(s.State.Current, s.State.Size)
	view := c.renderer.Render(window, s.State.Current, s.State.Total)

	err := c.sink.Update(ctx, s.Artifact, view)
	if err == nil {
		return nil
	}
	if errors.Is(err, pager.ErrNotFound) {
		s.ArtifactGone = true
		c.log.Debug("artifact gone, suppressing further commits", "session", s.ID)
		return nil
	}
	return fmt.Errorf("update artifact: %w", err)
}
