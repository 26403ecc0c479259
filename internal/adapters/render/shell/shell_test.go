package shell

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fharpR4/roomie-app/internal/application"
	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/logging"
	"github.com/fharpR4/roomie-app/internal/ports"
)

type memStore struct {
	session *domain.Session
}

func (s *memStore) Load(context.Context) (domain.Session, error) {
	if s.session == nil {
		return domain.Session{}, domain.ErrNoSession
	}
	return *s.session, nil
}

func (s *memStore) Save(_ context.Context, session domain.Session) error {
	s.session = &session
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.session = nil
	return nil
}

// fakeGateway answers every read with empty data; shell tests exercise the
// gate and chrome, not fetching.
type fakeGateway struct{}

func (fakeGateway) SignIn(context.Context, ports.Credentials) (domain.Session, error) {
	return domain.Session{Token: "tok"}, nil
}

func (fakeGateway) SignUp(context.Context, ports.SignUpRequest) (domain.Session, error) {
	return domain.Session{}, nil
}

func (fakeGateway) VerifyOTP(context.Context, string, string) (domain.Session, error) {
	return domain.Session{Token: "tok"}, nil
}

func (fakeGateway) SignOut(context.Context, string) error { return nil }

func (fakeGateway) FetchSession(context.Context, string) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (fakeGateway) GetProfile(context.Context, domain.ProfileID) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (fakeGateway) UpdateProfile(context.Context, domain.ProfileID, ports.ProfileUpdate) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (fakeGateway) ListRoommates(context.Context, domain.ProfileID) ([]domain.Profile, error) {
	return nil, nil
}

func (fakeGateway) ListRooms(context.Context, domain.RoomFilter) ([]domain.Room, error) {
	return nil, nil
}

func (fakeGateway) GetRoom(context.Context, domain.RoomID) (domain.Room, error) {
	return domain.Room{}, nil
}

func (fakeGateway) CreateRoom(context.Context, domain.Room) (domain.Room, error) {
	return domain.Room{}, nil
}

func (fakeGateway) SearchRooms(context.Context, string) ([]domain.Room, error) { return nil, nil }

func (fakeGateway) PlaceBid(context.Context, ports.NewBid) (domain.Bid, error) {
	return domain.Bid{}, nil
}

func (fakeGateway) ListUserBids(context.Context, domain.ProfileID) ([]domain.Bid, error) {
	return nil, nil
}

func (fakeGateway) ListRoomBids(context.Context, domain.RoomID) ([]domain.Bid, error) {
	return nil, nil
}

func (fakeGateway) SendMessage(context.Context, ports.NewMessage) (domain.Message, error) {
	return domain.Message{}, nil
}

func (fakeGateway) ListConversations(context.Context, domain.ProfileID) ([]domain.Message, error) {
	return nil, nil
}

func (fakeGateway) ListNotifications(context.Context, domain.ProfileID) ([]domain.Notification, error) {
	return nil, nil
}

func (fakeGateway) MarkNotificationRead(context.Context, domain.NotificationID) error { return nil }

func (fakeGateway) Upload(context.Context, string, string, io.Reader, int64) (string, error) {
	return "", nil
}

func newTestShell(t *testing.T, stored *domain.Session) Shell {
	t.Helper()

	store := &memStore{session: stored}
	sessions := application.NewSessionService(fakeGateway{}, store, logging.NewDiscardLogger())
	return New(context.Background(), sessions, fakeGateway{})
}

func resolve(t *testing.T, m Shell, authenticated bool) Shell {
	t.Helper()

	updated, _ := m.Update(sessionCheckedMsg{authenticated: authenticated})
	shell, ok := updated.(Shell)
	require.True(t, ok)
	return shell
}

func TestShellStartsLoading(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, nil)
	assert.Contains(t, m.View(), "Loading")
}

func TestGateResolvesToSignedIn(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, &domain.Session{Token: "tok"})
	m = resolve(t, m, true)

	assert.Equal(t, stateSignedIn, m.state)
	require.NotNil(t, m.page)
	assert.Equal(t, domain.PageHome, m.page.id())
}

func TestGateResolvesToSignedOut(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, nil)
	m = resolve(t, m, false)

	assert.Equal(t, stateSignedOut, m.state)
	assert.Contains(t, m.View(), "Sign in")
}

func TestGateResolvesExactlyOnce(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, nil)
	m = resolve(t, m, false)

	// A stray second resolution must not reopen the gate.
	m = resolve(t, m, true)
	assert.Equal(t, stateSignedOut, m.state)
}

func TestChromeBreakpoint(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, &domain.Session{Token: "tok"})
	m = resolve(t, m, true)

	// The sidebar hint only exists in the wide chrome.
	m.width = compactBreakpoint - 1
	assert.NotContains(t, m.View(), "ctrl+l sign out")

	m.width = compactBreakpoint
	assert.Contains(t, m.View(), "ctrl+l sign out")
}

func TestZeroWidthRendersWideChrome(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, &domain.Session{Token: "tok"})
	m = resolve(t, m, true)

	assert.Contains(t, m.View(), "ctrl+l sign out")
}

func TestPageSelectionHighlightsNavigation(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, &domain.Session{Token: "tok"})
	m = resolve(t, m, true)

	updated, _ := m.Update(pageSelectedMsg{page: domain.PageMessages})
	m = updated.(Shell)
	assert.Equal(t, domain.PageMessages, m.active)
}

func TestSignedOutResetsShell(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, &domain.Session{Token: "tok"})
	m = resolve(t, m, true)

	updated, _ := m.Update(pageSelectedMsg{page: domain.PageBrowse})
	m = updated.(Shell)

	updated, _ = m.Update(signedOutMsg{})
	m = updated.(Shell)

	assert.Equal(t, stateSignedOut, m.state)
	assert.Nil(t, m.page)
	assert.Empty(t, m.active)
}

func TestTabCyclesThroughPages(t *testing.T) {
	t.Parallel()

	pages := domain.Pages()
	assert.Equal(t, pages[1], nextPage(pages[0], 1))
	assert.Equal(t, pages[0], nextPage(pages[len(pages)-1], 1))
	assert.Equal(t, pages[len(pages)-1], nextPage(pages[0], -1))

	// Unknown current falls back to the first page.
	assert.Equal(t, pages[0], nextPage(domain.Page("bogus"), 1))
}

func TestNumberKeySwitchesPage(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, &domain.Session{Token: "tok"})
	m = resolve(t, m, true)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = updated.(Shell)
	require.NotNil(t, cmd)
	require.NotNil(t, m.page)
	assert.Equal(t, domain.Pages()[2], m.page.id())
}

func TestWindowSizeTracksDimensions(t *testing.T) {
	t.Parallel()

	m := newTestShell(t, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Shell)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
