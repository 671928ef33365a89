package mock_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fwojciec/pager"
	"github.com/fwojciec/pager/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("delegates to RenderFn", func(t *testing.T) {
		t.Parallel()
		r := mock.Renderer{
			RenderFn: func(window []string, page, total int) pager.View {
				return pager.View{Content: "rendered", Page: page, Total: total}
			},
		}
		view := r.Render([]string{"a"}, 1, 3)
		assert.Equal(t, "rendered", view.Content)
		assert.Equal(t, 1, view.Page)
		assert.Equal(t, 3, view.Total)
	})

	t.Run("panics when RenderFn not set", func(t *testing.T) {
		t.Parallel()
		var r mock.Renderer
		assert.Panics(t, func() {
			r.Render(nil, 0, 1)
		})
	})

	t.Run("plain renderer joins the window", func(t *testing.T) {
		t.Parallel()
		view := mock.PlainRenderer().Render([]string{"a", "b"}, 0, 1)
		assert.Equal(t, "a\nb", view.Content)
	})
}

func TestSink(t *testing.T) {
	t.Parallel()

	t.Run("delegates to function fields", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("sink down")
		s := mock.Sink{
			CreateFn: func(ctx context.Context, view pager.View) (pager.ArtifactRef, error) {
				return "ref-1", nil
			},
			UpdateFn: func(ctx context.Context, ref pager.ArtifactRef, view pager.View) error {
				return wantErr
			},
		}
		ref, err := s.Create(context.Background(), pager.View{})
		require.NoError(t, err)
		assert.Equal(t, pager.ArtifactRef("ref-1"), ref)
		assert.ErrorIs(t, s.Update(context.Background(), ref, pager.View{}), wantErr)
	})

	t.Run("delete is nil-safe", func(t *testing.T) {
		t.Parallel()
		var s mock.Sink
		assert.NoError(t, s.Delete(context.Background(), "ref-1"))
	})
}

func TestNoticeSink(t *testing.T) {
	t.Parallel()

	t.Run("delegates to NotifyFn", func(t *testing.T) {
		t.Parallel()
		var gotActor, gotText string
		s := mock.NoticeSink{
			NotifyFn: func(ctx context.Context, actorID, text string) error {
				gotActor, gotText = actorID, text
				return nil
			},
		}
		require.NoError(t, s.Notify(context.Background(), "intruder", "nope"))
		assert.Equal(t, "intruder", gotActor)
		assert.Equal(t, "nope", gotText)
	})

	t.Run("notify is nil-safe", func(t *testing.T) {
		t.Parallel()
		var s mock.NoticeSink
		assert.NoError(t, s.Notify(context.Background(), "a", "b"))
	})
}

func TestSource(t *testing.T) {
	t.Parallel()

	t.Run("script replays events then blocks", func(t *testing.T) {
		t.Parallel()
		src := mock.Script(
			pager.Event{ActorID: "owner", Action: pager.ActionNext},
			pager.Event{ActorID: "owner", Action: pager.ActionClose},
		)

		ev, err := src.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pager.ActionNext, ev.Action)

		ev, err = src.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pager.ActionClose, ev.Action)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = src.Next(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("feed ends with EOF when channel closes", func(t *testing.T) {
		t.Parallel()
		ch := make(chan pager.Event, 1)
		ch <- pager.Event{ActorID: "owner", Action: pager.ActionPrev}
		close(ch)
		src := mock.Feed(ch)

		ev, err := src.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, pager.ActionPrev, ev.Action)

		_, err = src.Next(context.Background())
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("close is nil-safe", func(t *testing.T) {
		t.Parallel()
		src := mock.Script()
		assert.NoError(t, src.Close())
	})
}

func TestPrompt(t *testing.T) {
	t.Parallel()

	p := mock.Prompt{
		OpenFn: func(ctx context.Context, actorID, label string) (string, error) {
			return "3", nil
		},
	}
	got, err := p.Open(context.Background(), "owner", "Page (1-5)")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}
