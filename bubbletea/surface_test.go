package bubbletea_test

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pager"
	bt "github.com/fwojciec/pager/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextMsg drains one controller-to-model message.
func nextMsg(t *testing.T, s *bt.Surface) tea.Msg {
	t.Helper()
	select {
	case msg := <-s.Messages():
		return msg
	case <-time.After(time.Second):
		t.Fatal("no surface message")
		return nil
	}
}

func TestSurface_ArtifactLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("create then update delivers views", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		ctx := context.Background()

		ref, err := s.Create(ctx, pager.View{Content: "page zero", Page: 0, Total: 3})
		require.NoError(t, err)
		require.NotEmpty(t, ref)

		msg, ok := nextMsg(t, s).(bt.ViewMsg)
		require.True(t, ok)
		assert.Equal(t, "page zero", msg.Content)

		require.NoError(t, s.Update(ctx, ref, pager.View{Content: "page one", Page: 1, Total: 3}))
		msg, ok = nextMsg(t, s).(bt.ViewMsg)
		require.True(t, ok)
		assert.Equal(t, "page one", msg.Content)
		assert.Equal(t, 1, msg.Page)
	})

	t.Run("update with a stale ref is not found", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		_, err := s.Create(context.Background(), pager.View{})
		require.NoError(t, err)

		err = s.Update(context.Background(), "stale", pager.View{})
		assert.ErrorIs(t, err, pager.ErrNotFound)
	})

	t.Run("delete clears and later calls are not found", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		ctx := context.Background()
		ref, err := s.Create(ctx, pager.View{})
		require.NoError(t, err)
		nextMsg(t, s)

		require.NoError(t, s.Delete(ctx, ref))
		_, ok := nextMsg(t, s).(bt.ClearMsg)
		require.True(t, ok)

		assert.ErrorIs(t, s.Update(ctx, ref, pager.View{}), pager.ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, ref), pager.ErrNotFound)
	})

	t.Run("discard mimics out-of-band deletion", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		ref, err := s.Create(context.Background(), pager.View{})
		require.NoError(t, err)
		nextMsg(t, s)

		s.Discard()
		assert.ErrorIs(t, s.Update(context.Background(), ref, pager.View{}), pager.ErrNotFound)
	})
}

func TestSurface_Events(t *testing.T) {
	t.Parallel()

	t.Run("pressed events arrive in order", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		s.Press(pager.Event{ActorID: "local", Action: pager.ActionNext})
		s.Press(pager.Event{ActorID: "local", Action: pager.ActionPrev})

		ev, err := s.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pager.ActionNext, ev.Action)

		ev, err = s.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pager.ActionPrev, ev.Action)
	})

	t.Run("close ends the subscription with EOF", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		require.NoError(t, s.Close())
		require.NoError(t, s.Close()) // idempotent

		_, err := s.Next(context.Background())
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("press after close is dropped", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		require.NoError(t, s.Close())
		s.Press(pager.Event{ActorID: "local", Action: pager.ActionNext}) // must not panic
	})

	t.Run("next honors context cancellation", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Next(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSurface_Prompt(t *testing.T) {
	t.Parallel()

	t.Run("submit resolves open", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()

		got := make(chan string, 1)
		go func() {
			text, err := s.Open(context.Background(), "local", "Page (1-3)")
			assert.NoError(t, err)
			got <- text
		}()

		prompt, ok := nextMsg(t, s).(bt.PromptMsg)
		require.True(t, ok)
		assert.Equal(t, "Page (1-3)", prompt.Label)
		prompt.Submit("2")

		select {
		case text := <-got:
			assert.Equal(t, "2", text)
		case <-time.After(time.Second):
			t.Fatal("open did not resolve")
		}
	})

	t.Run("dismiss resolves open with ErrPromptDismissed", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()

		errCh := make(chan error, 1)
		go func() {
			_, err := s.Open(context.Background(), "local", "Page (1-3)")
			errCh <- err
		}()

		prompt, ok := nextMsg(t, s).(bt.PromptMsg)
		require.True(t, ok)
		prompt.Dismiss()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, pager.ErrPromptDismissed)
		case <-time.After(time.Second):
			t.Fatal("open did not resolve")
		}
	})

	t.Run("expired open reclaims the modal", func(t *testing.T) {
		t.Parallel()
		s := bt.NewSurface()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := s.Open(ctx, "local", "Page (1-3)")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		_, ok := nextMsg(t, s).(bt.PromptMsg)
		require.True(t, ok)
		_, ok = nextMsg(t, s).(bt.PromptTimeoutMsg)
		assert.True(t, ok)
	})
}

func TestSurface_Notify(t *testing.T) {
	t.Parallel()

	s := bt.NewSurface()
	require.NoError(t, s.Notify(context.Background(), "local", "not yours"))
	msg, ok := nextMsg(t, s).(bt.NoticeMsg)
	require.True(t, ok)
	assert.Equal(t, "not yours", msg.Text)
}
