// Package markdown renders page windows to ANSI-styled terminal views
// using goldmark for entry parsing and lipgloss for styling.
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pager"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Interface compliance check.
var _ pager.Renderer = (*Renderer)(nil)

// Renderer renders one page of markdown entries into a pager.View.
// Each entry is one pre-formatted line of markdown; entries are clipped
// to the renderer width, never wrapped.
type Renderer struct {
	width  int
	header lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	code   lipgloss.Style
	bold   lipgloss.Style
	italic lipgloss.Style
}

// New creates a Renderer that clips entries to width display cells.
// Non-positive widths fall back to 80.
func New(width int, theme pager.Theme) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		width:  width,
		header: lipgloss.NewStyle().Foreground(ansiColor(theme.Header)).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		accent: lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		code:   lipgloss.NewStyle().Background(ansiColor(theme.CodeBg)),
		bold:   lipgloss.NewStyle().Bold(true),
		italic: lipgloss.NewStyle().Italic(true),
	}
}

// Render produces the view for one page window. Pure function of its
// inputs; it implements pager.Renderer.
func (r *Renderer) Render(window []string, page, total int) pager.View {
	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("Page %d of %d", page+1, total)))
	b.WriteString("\n\n")
	if len(window) == 0 {
		b.WriteString(r.muted.Render("(no entries)"))
	}
	for i, entry := range window {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.entryLine(entry))
	}
	return pager.View{Content: b.String(), Page: page, Total: total}
}

// entryLine renders a single markdown entry as one clipped line.
// Clipping happens on the source text so ANSI sequences added by
// styling never count against the width budget.
func (r *Renderer) entryLine(entry string) string {
	clipped := Clip(entry, r.width)
	source := []byte(clipped)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		switch n := n.(type) {
		case *ast.Heading:
			b.WriteString(r.accent.Render(r.inline(n, source)))
		default:
			b.WriteString(r.inline(n, source))
		}
	}
	if b.Len() == 0 {
		return clipped
	}
	return b.String()
}

// inline renders a block node's inline children, applying emphasis and
// code span styles.
func (r *Renderer) inline(node ast.Node, source []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &b)
	}
	return b.String()
}

func (r *Renderer) renderInline(node ast.Node, source []byte, b *strings.Builder) {
	switch n := node.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteString(" ")
		}
	case *ast.Emphasis:
		content := r.inline(n, source)
		if n.Level >= 2 {
			b.WriteString(r.bold.Render(content))
		} else {
			b.WriteString(r.italic.Render(content))
		}
	case *ast.CodeSpan:
		b.WriteString(r.code.Render(r.inline(n, source)))
	case *ast.Link:
		b.WriteString(r.inline(n, source))
	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, b)
		}
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
