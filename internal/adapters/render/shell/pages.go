package shell

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fharpR4/roomie-app/internal/domain"
)

// pageView is one routed content view. enter reports the page's identity
// upward (one-way, the shell never pushes back) and kicks off the page's own
// fetch; a fetch result that lands after the page was left is discarded by
// the replacement view.
type pageView interface {
	id() domain.Page
	enter() tea.Cmd
	update(msg tea.Msg) (pageView, tea.Cmd)
	view(width int, st styles) string
}

func newPageView(page domain.Page, d deps) pageView {
	switch page {
	case domain.PageBrowse:
		return &browsePage{deps: d}
	case domain.PageMessages:
		return &messagesPage{deps: d}
	case domain.PageRoommates:
		return &roommatesPage{deps: d}
	case domain.PageLendMe:
		return &lendMePage{deps: d}
	case domain.PageSettings:
		return &settingsPage{deps: d}
	default:
		return &homePage{deps: d}
	}
}

func selectCmd(page domain.Page) tea.Cmd {
	return func() tea.Msg {
		return pageSelectedMsg{page: page}
	}
}

// --- home ---

type homePage struct {
	deps          deps
	notifications []domain.Notification
	loaded        bool
	loadErr       error
}

func (p *homePage) id() domain.Page { return domain.PageHome }

func (p *homePage) enter() tea.Cmd {
	fetch := func() tea.Msg {
		userID := p.deps.sessions.Current().Profile.ID
		notifications, err := p.deps.gateway.ListNotifications(p.deps.ctx, userID)
		return notificationsLoadedMsg{notifications: notifications, err: err}
	}
	return tea.Batch(selectCmd(p.id()), fetch)
}

func (p *homePage) update(msg tea.Msg) (pageView, tea.Cmd) {
	if msg, ok := msg.(notificationsLoadedMsg); ok {
		p.loaded = true
		p.notifications, p.loadErr = msg.notifications, msg.err
	}
	return p, nil
}

func (p *homePage) view(_ int, st styles) string {
	profile := p.deps.sessions.Current().Profile
	lines := []string{st.title.Render("Welcome back, " + profile.FullName)}

	switch {
	case p.loadErr != nil:
		lines = append(lines, st.notice.Render(p.loadErr.Error()))
	case !p.loaded:
		lines = append(lines, st.faint.Render("Loading notifications..."))
	case len(p.notifications) == 0:
		lines = append(lines, st.faint.Render("No notifications."))
	default:
		for _, n := range p.notifications {
			marker := "  "
			if !n.Read {
				marker = st.badge.Render("new") + " "
			}
			lines = append(lines, marker+st.value.Render(n.Title))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- browse ---

type browsePage struct {
	deps    deps
	rooms   []domain.Room
	loaded  bool
	loadErr error
}

func (p *browsePage) id() domain.Page { return domain.PageBrowse }

func (p *browsePage) enter() tea.Cmd {
	fetch := func() tea.Msg {
		rooms, err := p.deps.gateway.ListRooms(p.deps.ctx, domain.RoomFilter{})
		return roomsLoadedMsg{page: p.id(), rooms: rooms, err: err}
	}
	return tea.Batch(selectCmd(p.id()), fetch)
}

func (p *browsePage) update(msg tea.Msg) (pageView, tea.Cmd) {
	if msg, ok := msg.(roomsLoadedMsg); ok && msg.page == p.id() {
		p.loaded = true
		p.rooms, p.loadErr = msg.rooms, msg.err
	}
	return p, nil
}

func (p *browsePage) view(_ int, st styles) string {
	lines := []string{st.title.Render("Available rooms")}

	switch {
	case p.loadErr != nil:
		lines = append(lines, st.notice.Render(p.loadErr.Error()))
	case !p.loaded:
		lines = append(lines, st.faint.Render("Loading rooms..."))
	case len(p.rooms) == 0:
		lines = append(lines, st.faint.Render("No rooms listed right now."))
	default:
		for _, room := range p.rooms {
			card := fmt.Sprintf("%s · %s · ₦%d", room.Title, room.City, room.Price)
			if room.BidCount > 0 {
				card += st.faint.Render(fmt.Sprintf("  (%d bids)", room.BidCount))
			}
			lines = append(lines, st.card.Render(card))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- messages ---

type messagesPage struct {
	deps          deps
	conversations []domain.Conversation
	loaded        bool
	loadErr       error
}

func (p *messagesPage) id() domain.Page { return domain.PageMessages }

func (p *messagesPage) enter() tea.Cmd {
	fetch := func() tea.Msg {
		userID := p.deps.sessions.Current().Profile.ID
		messages, err := p.deps.gateway.ListConversations(p.deps.ctx, userID)
		if err != nil {
			return conversationsLoadedMsg{err: err}
		}
		return conversationsLoadedMsg{conversations: domain.GroupConversations(userID, messages)}
	}
	return tea.Batch(selectCmd(p.id()), fetch)
}

func (p *messagesPage) update(msg tea.Msg) (pageView, tea.Cmd) {
	if msg, ok := msg.(conversationsLoadedMsg); ok {
		p.loaded = true
		p.conversations, p.loadErr = msg.conversations, msg.err
	}
	return p, nil
}

func (p *messagesPage) view(_ int, st styles) string {
	lines := []string{st.title.Render("Messages")}

	switch {
	case p.loadErr != nil:
		lines = append(lines, st.notice.Render(p.loadErr.Error()))
	case !p.loaded:
		lines = append(lines, st.faint.Render("Loading conversations..."))
	case len(p.conversations) == 0:
		lines = append(lines, st.faint.Render("No conversations yet."))
	default:
		for _, conv := range p.conversations {
			line := st.value.Render(conv.Counterpart.FullName) + " " + st.faint.Render(conv.LastMessage.Body)
			if conv.Unread > 0 {
				line = st.badge.Render(fmt.Sprintf("%d", conv.Unread)) + " " + line
			}
			lines = append(lines, line)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- roommates ---

type roommatesPage struct {
	deps     deps
	profiles []domain.Profile
	loaded   bool
	loadErr  error
}

func (p *roommatesPage) id() domain.Page { return domain.PageRoommates }

func (p *roommatesPage) enter() tea.Cmd {
	fetch := func() tea.Msg {
		userID := p.deps.sessions.Current().Profile.ID
		profiles, err := p.deps.gateway.ListRoommates(p.deps.ctx, userID)
		return roommatesLoadedMsg{profiles: profiles, err: err}
	}
	return tea.Batch(selectCmd(p.id()), fetch)
}

func (p *roommatesPage) update(msg tea.Msg) (pageView, tea.Cmd) {
	if msg, ok := msg.(roommatesLoadedMsg); ok {
		p.loaded = true
		p.profiles, p.loadErr = msg.profiles, msg.err
	}
	return p, nil
}

func (p *roommatesPage) view(_ int, st styles) string {
	lines := []string{st.title.Render("Find roommates")}

	switch {
	case p.loadErr != nil:
		lines = append(lines, st.notice.Render(p.loadErr.Error()))
	case !p.loaded:
		lines = append(lines, st.faint.Render("Loading profiles..."))
	case len(p.profiles) == 0:
		lines = append(lines, st.faint.Render("Nobody here yet."))
	default:
		for _, profile := range p.profiles {
			line := st.value.Render(profile.FullName)
			if profile.Institution != "" {
				line += " " + st.faint.Render(profile.Institution)
			}
			lines = append(lines, line)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- lend me ---

type lendMePage struct {
	deps    deps
	bids    []domain.Bid
	loaded  bool
	loadErr error
}

func (p *lendMePage) id() domain.Page { return domain.PageLendMe }

func (p *lendMePage) enter() tea.Cmd {
	fetch := func() tea.Msg {
		userID := p.deps.sessions.Current().Profile.ID
		bids, err := p.deps.gateway.ListUserBids(p.deps.ctx, userID)
		return bidsLoadedMsg{bids: bids, err: err}
	}
	return tea.Batch(selectCmd(p.id()), fetch)
}

func (p *lendMePage) update(msg tea.Msg) (pageView, tea.Cmd) {
	if msg, ok := msg.(bidsLoadedMsg); ok {
		p.loaded = true
		p.bids, p.loadErr = msg.bids, msg.err
	}
	return p, nil
}

func (p *lendMePage) view(_ int, st styles) string {
	lines := []string{
		st.title.Render("LendMe"),
		st.faint.Render("Peer lending between verified students."),
	}

	switch {
	case p.loadErr != nil:
		lines = append(lines, st.notice.Render(p.loadErr.Error()))
	case !p.loaded:
		lines = append(lines, st.faint.Render("Loading your bids..."))
	case len(p.bids) == 0:
		lines = append(lines, st.faint.Render("No active bids."))
	default:
		for _, bid := range p.bids {
			title := string(bid.RoomID)
			if bid.Room != nil {
				title = bid.Room.Title
			}
			lines = append(lines, st.value.Render(fmt.Sprintf("₦%d on %s (%s)", bid.Amount, title, bid.Status)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// --- settings ---

type settingsPage struct {
	deps    deps
	profile domain.Profile
	loaded  bool
	loadErr error
}

type profileRefreshedMsg struct {
	profile domain.Profile
	err     error
}

func (p *settingsPage) id() domain.Page { return domain.PageSettings }

func (p *settingsPage) enter() tea.Cmd {
	fetch := func() tea.Msg {
		profile, err := p.deps.sessions.RefreshProfile(p.deps.ctx)
		return profileRefreshedMsg{profile: profile, err: err}
	}
	return tea.Batch(selectCmd(p.id()), fetch)
}

func (p *settingsPage) update(msg tea.Msg) (pageView, tea.Cmd) {
	if msg, ok := msg.(profileRefreshedMsg); ok {
		p.loaded = true
		p.loadErr = msg.err
		if msg.err == nil {
			p.profile = msg.profile
		}
	}
	return p, nil
}

func (p *settingsPage) view(_ int, st styles) string {
	profile := p.profile
	if !p.loaded || p.loadErr != nil {
		// Stale snapshot is better than nothing while the refresh is
		// pending or failed.
		profile = p.deps.sessions.Current().Profile
	}

	lines := []string{st.title.Render("Settings")}
	if p.loadErr != nil {
		lines = append(lines, st.notice.Render(p.loadErr.Error()))
	}

	lines = append(lines,
		st.label.Render("Name  ")+st.value.Render(profile.FullName),
		st.label.Render("Email ")+st.value.Render(profile.Email),
		st.label.Render("Phone ")+st.value.Render(profile.Phone),
	)
	if profile.Verified {
		lines = append(lines, st.badge.Render("verified"))
	}
	lines = append(lines, "", st.faint.Render("ctrl+l to sign out"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
