package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fharpR4/roomie-app/internal/domain"
)

// chrome renders the authenticated layout. Narrow terminals get a top bar
// with a bottom tab row; wide terminals a sidebar next to the content. Both
// host the exact same page view.
func (m Shell) chrome() string {
	content := m.content()

	if m.width > 0 && m.width < compactBreakpoint {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.topBar(),
			content,
			m.bottomNav(),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, m.topBar(), content)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), body)
}

func (m Shell) content() string {
	var sections []string
	if m.notice != "" {
		sections = append(sections, m.styles.notice.Render(m.notice))
	}
	if m.page != nil {
		sections = append(sections, m.page.view(m.width, m.styles))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Shell) topBar() string {
	profile := m.deps.sessions.Current().Profile

	left := m.styles.topBar.Render("Roomie · " + m.active.Title())
	right := m.styles.faint.Render(profile.Initials())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// bottomNav is the compact-chrome tab row.
func (m Shell) bottomNav() string {
	entries := make([]string, 0, len(domain.Pages()))
	for _, page := range domain.Pages() {
		entries = append(entries, m.navEntry(page))
	}
	return strings.Join(entries, "  ")
}

// sidebar is the wide-chrome navigation column.
func (m Shell) sidebar() string {
	lines := []string{m.styles.title.Render("Roomie")}
	for _, page := range domain.Pages() {
		lines = append(lines, m.navEntry(page))
	}
	lines = append(lines, "", m.styles.faint.Render("ctrl+l sign out"))
	return m.styles.sidebar.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Shell) navEntry(page domain.Page) string {
	if page == m.active {
		return m.styles.navActive.Render("● " + page.Title())
	}
	return m.styles.navIdle.Render("  " + page.Title())
}
