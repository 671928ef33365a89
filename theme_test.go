package pager_test

import (
	"testing"

	"github.com/fwojciec/pager"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := pager.DefaultTheme()

	assert.Equal(t, 4, theme.Header)
	assert.Equal(t, 8, theme.Muted)
	assert.Equal(t, 1, theme.Error)
	assert.Equal(t, 5, theme.Accent)
	assert.Equal(t, 0, theme.CodeBg)
}
