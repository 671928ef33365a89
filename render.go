package pager

// View is the rendered representation of one page, ready to be written
// to an artifact.
type View struct {
	Content string
	Page    int // zero-based page the view shows
	Total   int
}

// Renderer produces a View for a window of entries. Implementations are
// pure functions of their inputs; no side effects.
type Renderer interface {
	Render(window []string, page, total int) View
}
