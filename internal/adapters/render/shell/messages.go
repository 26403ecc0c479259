package shell

import "github.com/fharpR4/roomie-app/internal/domain"

// sessionCheckedMsg resolves the boot-time loading state, exactly once per
// program run.
type sessionCheckedMsg struct {
	session       domain.Session
	authenticated bool
}

// signedInMsg flips the gate to the authenticated shell after a successful
// sign-in or verification.
type signedInMsg struct {
	session domain.Session
}

// signedOutMsg flips the gate back to the login screen; the durable session
// was already cleared when it is emitted.
type signedOutMsg struct{}

// pageSelectedMsg is the one-way mount notification a page sends upward so
// navigation can highlight it. The shell never pushes state back down.
type pageSelectedMsg struct {
	page domain.Page
}

// noticeMsg surfaces a transient user-facing message (validation or remote
// failure); the underlying view stays usable.
type noticeMsg struct {
	text string
}

// Page fetch results. A result arriving after its page was left is simply
// discarded.
type roomsLoadedMsg struct {
	page  domain.Page
	rooms []domain.Room
	err   error
}

type conversationsLoadedMsg struct {
	conversations []domain.Conversation
	err           error
}

type roommatesLoadedMsg struct {
	profiles []domain.Profile
	err      error
}

type bidsLoadedMsg struct {
	bids []domain.Bid
	err  error
}

type notificationsLoadedMsg struct {
	notifications []domain.Notification
	err           error
}
