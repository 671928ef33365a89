package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/pager"
)

// jump runs the nested jump-to-page sub-flow on the session goroutine.
// The prompt is scoped to the actor that opened it and has its own
// timeout. An abandoned prompt reverts to Active silently; only invalid
// input produces a (actor-scoped) message.
func (c *Controller) jump(ctx context.Context, s *pager.Session, actorID string) error {
	s.Status = pager.StatusAwaitingJump

	promptCtx, cancel := context.WithTimeout(ctx, c.cfg.JumpTimeout)
	defer cancel()

	label := fmt.Sprintf("Page (1-%d)", s.State.Total)
	raw, err := c.prompts.Open(promptCtx, actorID, label)

	s.Status = pager.StatusActive

	switch {
	case err == nil:
	case errors.Is(err, pager.ErrPromptDismissed), errors.Is(err, context.DeadlineExceeded):
		// User-abandoned sub-flow, not a fault.
		c.log.Debug("jump prompt abandoned", "session", s.ID)
		return nil
	default:
		return fmt.Errorf("jump prompt: %w", err)
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil || n < 1 || n > s.State.Total {
		c.notify(ctx, actorID, fmt.Sprintf("enter a page between 1 and %d", s.State.Total))
		return nil
	}

	// 1-based from the user's perspective; same re-render path as a
	// directional navigation.
	return c.navigate(ctx, s, n-1)
}
