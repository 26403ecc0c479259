// Package shell hosts the interactive terminal client: a session-gated root
// model, responsive chrome picked from the terminal width, and one model per
// content page.
package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fharpR4/roomie-app/internal/application"
	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

type gateState int

const (
	stateLoading gateState = iota
	stateSignedOut
	stateSignedIn
)

// compactBreakpoint is the single layout breakpoint: narrower terminals get
// the top-bar-plus-bottom-tabs chrome, everything else the sidebar chrome.
// The choice affects chrome only, never page content or fetching.
const compactBreakpoint = 80

type deps struct {
	ctx      context.Context
	sessions *application.SessionService
	gateway  ports.Gateway
}

// Shell is the root model. It starts in a loading state, issues exactly one
// session check, and resolves to the signed-in or signed-out flow. The
// resolution happens once per program run; afterwards only sign-in, verify
// and sign-out move the gate.
type Shell struct {
	deps   deps
	styles styles

	state  gateState
	width  int
	height int

	active domain.Page
	page   pageView
	auth   authFlow

	notice string
}

func New(ctx context.Context, sessions *application.SessionService, gateway ports.Gateway) Shell {
	d := deps{ctx: ctx, sessions: sessions, gateway: gateway}
	return Shell{
		deps:   d,
		styles: newStyles(),
		state:  stateLoading,
		auth:   newAuthFlow(d),
	}
}

// Run drives the program to completion.
func Run(ctx context.Context, sessions *application.SessionService, gateway ports.Gateway) error {
	program := tea.NewProgram(
		New(ctx, sessions, gateway),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()
	return err
}

func (m Shell) Init() tea.Cmd {
	return m.checkSession()
}

func (m Shell) checkSession() tea.Cmd {
	return func() tea.Msg {
		session, authenticated := m.deps.sessions.Boot(m.deps.ctx)
		return sessionCheckedMsg{session: session, authenticated: authenticated}
	}
}

func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionCheckedMsg:
		if m.state != stateLoading {
			return m, nil
		}
		if msg.authenticated {
			m.state = stateSignedIn
			return m, m.switchTo(domain.PageHome)
		}
		m.state = stateSignedOut
		return m, nil

	case signedInMsg:
		m.state = stateSignedIn
		m.notice = ""
		return m, m.switchTo(domain.PageHome)

	case signedOutMsg:
		m.state = stateSignedOut
		m.page = nil
		m.active = ""
		m.auth = newAuthFlow(m.deps)
		return m, nil

	case pageSelectedMsg:
		m.active = msg.page
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state != stateSignedIn {
		return m.forward(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.signOut()
	case "tab":
		return m, m.switchTo(nextPage(m.active, 1))
	case "shift+tab":
		return m, m.switchTo(nextPage(m.active, -1))
	case "1", "2", "3", "4", "5", "6":
		pages := domain.Pages()
		return m, m.switchTo(pages[int(msg.String()[0]-'1')])
	}

	return m.forward(msg)
}

// signOut clears the durable session synchronously and flips the gate; no
// server round-trip is awaited.
func (m Shell) signOut() tea.Cmd {
	return func() tea.Msg {
		if err := m.deps.sessions.SignOut(m.deps.ctx); err != nil {
			return noticeMsg{text: err.Error()}
		}
		return signedOutMsg{}
	}
}

func (m *Shell) switchTo(page domain.Page) tea.Cmd {
	if !page.Valid() {
		page = domain.PageHome
	}

	view := newPageView(page, m.deps)
	m.page = view
	return view.enter()
}

func (m Shell) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSignedOut:
		flow, cmd := m.auth.update(msg)
		m.auth = flow
		return m, cmd
	case stateSignedIn:
		if m.page == nil {
			return m, nil
		}
		view, cmd := m.page.update(msg)
		m.page = view
		return m, cmd
	default:
		return m, nil
	}
}

func (m Shell) View() string {
	switch m.state {
	case stateLoading:
		return m.styles.faint.Render("Loading Roomie...")
	case stateSignedOut:
		return m.auth.view(m.styles, m.notice)
	default:
		return m.chrome()
	}
}

func nextPage(current domain.Page, step int) domain.Page {
	pages := domain.Pages()
	for i, page := range pages {
		if page == current {
			return pages[(i+step+len(pages))%len(pages)]
		}
	}
	return pages[0]
}
