// Package mock provides test doubles for pager interfaces using
// function fields.
package mock

import "github.com/fwojciec/pager"

// Interface compliance check.
var _ pager.Renderer = (*Renderer)(nil)

// Renderer is a test double for pager.Renderer. RenderFn panics when
// nil to catch missing setup.
type Renderer struct {
	RenderFn func(window []string, page, total int) pager.View
}

// Render delegates to RenderFn.
func (r *Renderer) Render(window []string, page, total int) pager.View {
	return r.RenderFn(window, page, total)
}

// PlainRenderer returns a Renderer whose views carry the window joined
// by newlines. Convenient default for controller tests.
func PlainRenderer() *Renderer {
	return &Renderer{
		RenderFn: func(window []string, page, total int) pager.View {
			content := ""
			for i, entry := range window {
				if i > 0 {
					content += "\n"
				}
				content += entry
			}
			return pager.View{Content: content, Page: page, Total: total}
		},
	}
}
