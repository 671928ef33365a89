package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pager"
)

// Styles maps a Theme to lipgloss styles for the surface chrome. The
// page body arrives pre-styled from the renderer.
type Styles struct {
	Hints  lipgloss.Style
	Notice lipgloss.Style
	Prompt lipgloss.Style
	Closed lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t pager.Theme) Styles {
	return Styles{
		Hints:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Notice: lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Prompt: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Closed: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
