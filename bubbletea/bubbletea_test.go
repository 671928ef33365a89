package bubbletea_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pager"
	bt "github.com/fwojciec/pager/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model bound to surface and sends a WindowSizeMsg
// to initialize the viewport.
func initModel(t *testing.T, surface *bt.Surface, run bt.SessionFunc) bt.Model {
	t.Helper()
	m := bt.New(surface, run, "local", pager.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// pressedEvent reads the event a key press fed into the surface.
func pressedEvent(t *testing.T, s *bt.Surface) pager.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := s.Next(ctx)
	require.NoError(t, err)
	return ev
}

// nopSession is a session that retires immediately.
func nopSession() error {
	return nil
}
