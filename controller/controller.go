// Package controller owns live pagination sessions. Each session is
// driven by a single goroutine that applies events strictly one at a
// time, in arrival order; sessions are fully independent of each other.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/pager"
	"github.com/google/uuid"
)

// Config carries the process-wide pagination settings, resolved once at
// startup and passed in explicitly.
type Config struct {
	// PageSize is the number of entries per page. Must be positive.
	PageSize int
	// IdleTimeout bounds the whole session. A single timer is armed at
	// Start; it is not reset by activity.
	IdleTimeout time.Duration
	// JumpTimeout bounds one jump prompt. Independent of, and shorter
	// than, IdleTimeout.
	JumpTimeout time.Duration
}

// Validate checks the configuration constraints.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d: %w", c.PageSize, pager.ErrValidation)
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %s: %w", c.IdleTimeout, pager.ErrValidation)
	}
	if c.JumpTimeout <= 0 {
		return fmt.Errorf("jump timeout must be positive, got %s: %w", c.JumpTimeout, pager.ErrValidation)
	}
	return nil
}

// Controller creates and drives sessions against a renderer, an
// artifact sink, and a prompt sink.
type Controller struct {
	renderer pager.Renderer
	sink     pager.ArtifactSink
	prompts  pager.PromptSink
	cfg      Config
	log      *slog.Logger
}

// New creates a Controller. A nil logger falls back to slog.Default.
func New(renderer pager.Renderer, sink pager.ArtifactSink, prompts pager.PromptSink, cfg Config, logger *slog.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		renderer: renderer,
		sink:     sink,
		prompts:  prompts,
		cfg:      cfg,
		log:      logger,
	}, nil
}

// Start captures the snapshot, renders page 0, creates the artifact,
// and begins consuming events from source on a new goroutine. The
// returned Handle reports when the session has retired.
func (c *Controller) Start(ctx context.Context, list pager.Snapshot, ownerID string, source pager.EventSource) (*Handle, error) {
	s := &pager.Session{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		List:     list,
		State:    pager.NewPageState(list.Len(), c.cfg.PageSize),
		Status:   pager.StatusActive,
		Deadline: time.Now().Add(c.cfg.IdleTimeout),
	}

	view := c.renderer.Render(s.List.Window(0, s.State.Size), 0, s.State.Total)
	ref, err := c.sink.Create(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("create artifact: %w", err)
	}
	s.Artifact = ref

	c.log.Debug("session started",
		"session", s.ID,
		"owner", ownerID,
		"entries", list.Len(),
		"pages", s.State.Total)

	h := newHandle(s)
	go c.run(ctx, s, source, h)
	return h, nil
}
