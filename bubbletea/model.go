package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/pager"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for one pagination session. It shows
// the current artifact view, maps keys to navigation events, and hosts
// the jump modal.
type Model struct {
	// Input is the jump modal text input. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable page body. Exported for test access.
	Viewport viewport.Model

	surface *Surface
	run     SessionFunc
	actor   string
	styles  Styles

	content string
	notice  string
	cleared bool

	prompting bool
	prompt    PromptMsg

	done  bool
	err   error
	ready bool
}

// New creates a Model bound to surface. actorID is the identity stamped
// on every event this terminal emits.
func New(surface *Surface, run SessionFunc, actorID string, theme pager.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "page number"
	ti.Prompt = ""
	ti.CharLimit = 6

	return Model{
		Input:   ti,
		surface: surface,
		run:     run,
		actor:   actorID,
		styles:  NewStyles(theme),
	}
}

// Done reports whether the session has retired.
func (m Model) Done() bool { return m.done }

// Err returns the session fault, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model. It starts the session and the surface
// listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenSurface(), m.startSession())
}

// listenSurface waits for the next controller message. Re-issued after
// every surface message so the stream keeps flowing.
func (m Model) listenSurface() tea.Cmd {
	ch := m.surface.Messages()
	return func() tea.Msg {
		return <-ch
	}
}

func (m Model) startSession() tea.Cmd {
	run := m.run
	return func() tea.Msg {
		return SessionDoneMsg{Err: run()}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ViewMsg:
		m.content = msg.Content
		m.cleared = false
		m.notice = ""
		m.Viewport.SetContent(m.content)
		return m, m.listenSurface()

	case ClearMsg:
		m.cleared = true
		m.content = ""
		m.Viewport.SetContent("")
		return m, m.listenSurface()

	case NoticeMsg:
		m.notice = msg.Text
		return m, m.listenSurface()

	case PromptMsg:
		m.prompting = true
		m.prompt = msg
		m.Input.SetValue("")
		cmd := m.Input.Focus()
		return m, tea.Batch(cmd, textinput.Blink, m.listenSurface())

	case PromptTimeoutMsg:
		m = m.closePrompt()
		return m, m.listenSurface()

	case SessionDoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	// Viewport handles everything else, e.g. mouse scrolling.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	const chromeHeight = 2 // status line plus its separator
	m.Viewport.Width = msg.Width
	m.Viewport.Height = msg.Height - chromeHeight
	m.Viewport.SetContent(m.content)
	m.ready = true
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		switch msg.Type {
		case tea.KeyEnter:
			m.prompt.Submit(m.Input.Value())
			return m.closePrompt(), nil
		case tea.KeyEscape:
			m.prompt.Dismiss()
			return m.closePrompt(), nil
		default:
			var cmd tea.Cmd
			m.Input, cmd = m.Input.Update(msg)
			return m, cmd
		}
	}

	m.notice = ""

	switch msg.String() {
	case "left", "h":
		m.surface.Press(pager.Event{ActorID: m.actor, Action: pager.ActionPrev})
	case "right", "l":
		m.surface.Press(pager.Event{ActorID: m.actor, Action: pager.ActionNext})
	case "home", "0":
		m.surface.Press(pager.Event{ActorID: m.actor, Action: pager.ActionHome})
	case "g":
		m.surface.Press(pager.Event{ActorID: m.actor, Action: pager.ActionJumpOpen})
	case "q", "ctrl+c":
		m.surface.Press(pager.Event{ActorID: m.actor, Action: pager.ActionClose})
	default:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) closePrompt() Model {
	m.prompting = false
	m.Input.Blur()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	if m.cleared {
		b.WriteString(m.styles.Closed.Render("(session closed)"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.Viewport.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	if m.prompting {
		return m.styles.Prompt.Render(m.prompt.Label+": ") + m.Input.View()
	}
	if m.notice != "" {
		return m.styles.Notice.Render(m.notice)
	}
	return m.styles.Hints.Render("←/→ page · 0 home · g jump · q quit")
}
