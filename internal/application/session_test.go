package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/logging"
	"github.com/fharpR4/roomie-app/internal/ports"
)

type stubStore struct {
	session  *domain.Session
	loadErr  error
	saveErr  error
	clearErr error
	clears   int
}

func (s *stubStore) Load(context.Context) (domain.Session, error) {
	if s.loadErr != nil {
		return domain.Session{}, s.loadErr
	}
	if s.session == nil {
		return domain.Session{}, domain.ErrNoSession
	}
	return *s.session, nil
}

func (s *stubStore) Save(_ context.Context, session domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.session = &session
	return nil
}

func (s *stubStore) Clear(context.Context) error {
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.session = nil
	return nil
}

type stubGateway struct {
	signIn  func(ports.Credentials) (domain.Session, error)
	signUp  func(ports.SignUpRequest) (domain.Session, error)
	verify  func(email, code string) (domain.Session, error)
	fetch   func(token string) (domain.Profile, error)
	upload  func(bucket, path string, size int64) (string, error)
	uploads int
}

func (g *stubGateway) SignIn(_ context.Context, creds ports.Credentials) (domain.Session, error) {
	return g.signIn(creds)
}

func (g *stubGateway) SignUp(_ context.Context, req ports.SignUpRequest) (domain.Session, error) {
	return g.signUp(req)
}

func (g *stubGateway) VerifyOTP(_ context.Context, email, code string) (domain.Session, error) {
	return g.verify(email, code)
}

func (g *stubGateway) FetchSession(_ context.Context, token string) (domain.Profile, error) {
	return g.fetch(token)
}

func (g *stubGateway) Upload(_ context.Context, bucket, path string, _ io.Reader, size int64) (string, error) {
	g.uploads++
	return g.upload(bucket, path, size)
}

func (g *stubGateway) SignOut(context.Context, string) error { return nil }

func (g *stubGateway) GetProfile(context.Context, domain.ProfileID) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (g *stubGateway) UpdateProfile(context.Context, domain.ProfileID, ports.ProfileUpdate) (domain.Profile, error) {
	return domain.Profile{}, nil
}

func (g *stubGateway) ListRoommates(context.Context, domain.ProfileID) ([]domain.Profile, error) {
	return nil, nil
}

func (g *stubGateway) ListRooms(context.Context, domain.RoomFilter) ([]domain.Room, error) {
	return nil, nil
}

func (g *stubGateway) GetRoom(context.Context, domain.RoomID) (domain.Room, error) {
	return domain.Room{}, nil
}

func (g *stubGateway) CreateRoom(context.Context, domain.Room) (domain.Room, error) {
	return domain.Room{}, nil
}

func (g *stubGateway) SearchRooms(context.Context, string) ([]domain.Room, error) {
	return nil, nil
}

func (g *stubGateway) PlaceBid(context.Context, ports.NewBid) (domain.Bid, error) {
	return domain.Bid{}, nil
}

func (g *stubGateway) ListUserBids(context.Context, domain.ProfileID) ([]domain.Bid, error) {
	return nil, nil
}

func (g *stubGateway) ListRoomBids(context.Context, domain.RoomID) ([]domain.Bid, error) {
	return nil, nil
}

func (g *stubGateway) SendMessage(context.Context, ports.NewMessage) (domain.Message, error) {
	return domain.Message{}, nil
}

func (g *stubGateway) ListConversations(context.Context, domain.ProfileID) ([]domain.Message, error) {
	return nil, nil
}

func (g *stubGateway) ListNotifications(context.Context, domain.ProfileID) ([]domain.Notification, error) {
	return nil, nil
}

func (g *stubGateway) MarkNotificationRead(context.Context, domain.NotificationID) error {
	return nil
}

func newTestService(gateway *stubGateway, store *stubStore) *SessionService {
	return NewSessionService(gateway, store, logging.NewDiscardLogger())
}

func TestBootWithStoredTokenResolvesAuthenticated(t *testing.T) {
	t.Parallel()

	store := &stubStore{session: &domain.Session{Token: "tok", Profile: domain.Profile{ID: "u1"}}}
	svc := newTestService(&stubGateway{}, store)

	session, authenticated := svc.Boot(context.Background())
	require.True(t, authenticated)
	assert.Equal(t, "tok", session.Token)
}

func TestBootWithoutSessionResolvesSignedOut(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubGateway{}, &stubStore{})

	_, authenticated := svc.Boot(context.Background())
	assert.False(t, authenticated)
}

func TestBootStorageFailureFailsClosed(t *testing.T) {
	t.Parallel()

	store := &stubStore{loadErr: errors.New("disk on fire")}
	svc := newTestService(&stubGateway{}, store)

	_, authenticated := svc.Boot(context.Background())
	require.False(t, authenticated)
	assert.False(t, svc.Current().Authenticated())
}

func TestBootResolvesOnce(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := newTestService(&stubGateway{}, store)

	_, authenticated := svc.Boot(context.Background())
	require.False(t, authenticated)

	// A session appearing in storage later does not re-open the gate.
	store.session = &domain.Session{Token: "tok"}
	_, authenticated = svc.Boot(context.Background())
	assert.False(t, authenticated)
}

func TestSignInPersistsSession(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	gateway := &stubGateway{
		signIn: func(creds ports.Credentials) (domain.Session, error) {
			require.Equal(t, "ada@x.ng", creds.Email)
			return domain.Session{Token: "tok", Profile: domain.Profile{Email: creds.Email}}, nil
		},
	}
	svc := newTestService(gateway, store)

	session, err := svc.SignIn(context.Background(), "ada@x.ng", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	require.NotNil(t, store.session)
	assert.Equal(t, "tok", store.session.Token)
	assert.True(t, svc.Current().Authenticated())
}

func TestSignInFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{
		signIn: func(ports.Credentials) (domain.Session, error) {
			return domain.Session{}, errors.New("invalid login credentials")
		},
	}
	store := &stubStore{}
	svc := newTestService(gateway, store)

	_, err := svc.SignIn(context.Background(), "ada@x.ng", "wrong")
	require.Error(t, err)
	assert.Nil(t, store.session)
	assert.False(t, svc.Current().Authenticated())
}

func TestSignOutIsIdempotent(t *testing.T) {
	t.Parallel()

	store := &stubStore{session: &domain.Session{Token: "tok"}}
	svc := newTestService(&stubGateway{}, store)
	svc.Boot(context.Background())

	require.NoError(t, svc.SignOut(context.Background()))
	assert.False(t, svc.Current().Authenticated())

	require.NoError(t, svc.SignOut(context.Background()))
	assert.False(t, svc.Current().Authenticated())
	assert.Equal(t, 2, store.clears)
}

func TestRegisterRejectsIncompleteRegistration(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{}
	svc := newTestService(gateway, &stubStore{})

	_, err := svc.Register(context.Background(), domain.NewRegistration(), func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("doc")), nil
	})
	require.Error(t, err)
	assert.Zero(t, gateway.uploads)
}

func TestRegisterUploadsDocumentAfterSignUp(t *testing.T) {
	t.Parallel()

	reg := completeRegistration()
	gateway := &stubGateway{
		signUp: func(req ports.SignUpRequest) (domain.Session, error) {
			assert.Equal(t, reg.Email, req.Email)
			return domain.Session{Profile: domain.Profile{ID: "u1"}}, nil
		},
		upload: func(bucket, path string, size int64) (string, error) {
			assert.Equal(t, "verification-documents", bucket)
			assert.True(t, strings.HasPrefix(path, "u1/"), path)
			assert.True(t, strings.HasSuffix(path, ".jpg"), path)
			return "https://cdn.example/" + path, nil
		},
	}
	svc := newTestService(gateway, &stubStore{})

	url, err := svc.Register(context.Background(), reg, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("doc")), nil
	})
	require.NoError(t, err)
	assert.Contains(t, url, "u1/")
	assert.Equal(t, 1, gateway.uploads)
}

func TestRegisterAbortsWhenUploadFails(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{
		signUp: func(ports.SignUpRequest) (domain.Session, error) {
			return domain.Session{Profile: domain.Profile{ID: "u1"}}, nil
		},
		upload: func(string, string, int64) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}
	svc := newTestService(gateway, &stubStore{})

	url, err := svc.Register(context.Background(), completeRegistration(), func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("doc")), nil
	})
	require.Error(t, err)
	assert.Empty(t, url)
}

func TestVerifyOTPEstablishesSession(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	gateway := &stubGateway{
		verify: func(email, code string) (domain.Session, error) {
			require.Equal(t, "ada@x.ng", email)
			require.Equal(t, "123456", code)
			return domain.Session{Token: "tok"}, nil
		},
	}
	svc := newTestService(gateway, store)

	session, err := svc.VerifyOTP(context.Background(), "ada@x.ng", "123456")
	require.NoError(t, err)
	assert.True(t, session.Authenticated())
	assert.True(t, svc.Current().Authenticated())
}

func TestRefreshProfileRequiresSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubGateway{}, &stubStore{})
	svc.Boot(context.Background())

	_, err := svc.RefreshProfile(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func completeRegistration() *domain.Registration {
	reg := domain.NewRegistration()
	reg.FullName = "Ada Obi"
	reg.Email = "ada@student.edu.ng"
	reg.Phone = "08012345678"
	reg.Password = "correct-horse"
	reg.ConfirmPassword = "correct-horse"
	reg.NationalID = "12345678901"
	reg.Institution = "FUTA"
	reg.Document = &domain.Document{Name: "student-id.jpg", Size: 64 << 10}

	for reg.Step() < domain.StepVerification {
		if errs := reg.Next(); len(errs) > 0 {
			panic(errors.Join(errs...))
		}
	}
	return reg
}
