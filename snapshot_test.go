package pager_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("entry %d", i)
	}
	return out
}

func TestSnapshot_ImmuneToCallerMutation(t *testing.T) {
	t.Parallel()

	src := []string{"a", "b", "c"}
	snap := pager.NewSnapshot(src)
	src[0] = "mutated"

	window := snap.Window(0, 3)
	require.Len(t, window, 3)
	assert.Equal(t, "a", window[0])
}

func TestSnapshot_Window(t *testing.T) {
	t.Parallel()

	snap := pager.NewSnapshot(entries(45))

	t.Run("first page is full", func(t *testing.T) {
		t.Parallel()
		window := snap.Window(0, 20)
		require.Len(t, window, 20)
		assert.Equal(t, "entry 0", window[0])
		assert.Equal(t, "entry 19", window[19])
	})

	t.Run("middle page is full", func(t *testing.T) {
		t.Parallel()
		window := snap.Window(1, 20)
		require.Len(t, window, 20)
		assert.Equal(t, "entry 20", window[0])
		assert.Equal(t, "entry 39", window[19])
	})

	t.Run("last page truncates at list end", func(t *testing.T) {
		t.Parallel()
		window := snap.Window(2, 20)
		require.Len(t, window, 5)
		assert.Equal(t, "entry 40", window[0])
		assert.Equal(t, "entry 44", window[4])
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, snap.Window(3, 20))
	})

	t.Run("empty snapshot has an empty page", func(t *testing.T) {
		t.Parallel()
		empty := pager.NewSnapshot(nil)
		assert.Equal(t, 0, empty.Len())
		assert.Empty(t, empty.Window(0, 20))
	})
}
