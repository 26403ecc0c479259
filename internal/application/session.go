package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sync"

	"github.com/google/uuid"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

// SessionService owns the client's session state. It is the only writer: the
// shell and commands read through Current and mutate only via SignIn,
// VerifyOTP and SignOut.
type SessionService struct {
	gateway ports.Gateway
	store   ports.SessionStore
	logger  *slog.Logger

	// VerificationBucket receives registration documents.
	VerificationBucket string

	mu      sync.RWMutex
	current domain.Session
	booted  bool
}

func NewSessionService(gateway ports.Gateway, store ports.SessionStore, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		gateway:            gateway,
		store:              store,
		logger:             logger,
		VerificationBucket: "verification-documents",
	}
}

// Boot performs the one session check of the process lifetime: read the
// durable store and resolve to authenticated or unauthenticated. Any read
// failure is logged and resolves unauthenticated; a boot never fails open.
// Calling Boot again returns the already-resolved state.
func (s *SessionService) Boot(ctx context.Context) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booted {
		return s.current, s.current.Authenticated()
	}
	s.booted = true

	session, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			s.logger.Warn("session check failed, treating as signed out", "error", err)
		}
		s.current = domain.Session{}
		return s.current, false
	}

	s.current = session
	return s.current, session.Authenticated()
}

// Current returns a read-only snapshot of the session.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	session, err := s.gateway.SignIn(ctx, ports.Credentials{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign in: %w", err)
	}

	return s.establish(ctx, session)
}

// Register runs the backend half of a validated registration: create the auth
// user and profile row, then upload the verification document. The document
// size was already checked client-side; upload failure aborts registration
// with no partial state to clean up locally.
func (s *SessionService) Register(ctx context.Context, reg *domain.Registration, open func() (io.ReadCloser, error)) (string, error) {
	if !reg.Complete() {
		return "", domain.ErrFieldsMissing
	}

	session, err := s.gateway.SignUp(ctx, ports.SignUpRequest{
		Email:       reg.Email,
		Password:    reg.Password,
		FullName:    reg.FullName,
		Phone:       reg.Phone,
		Institution: reg.Institution,
	})
	if err != nil {
		return "", fmt.Errorf("sign up: %w", err)
	}

	r, err := open()
	if err != nil {
		return "", fmt.Errorf("open verification document: %w", err)
	}
	defer func() { _ = r.Close() }()

	objectPath := path.Join(string(session.Profile.ID), uuid.NewString()+path.Ext(reg.Document.Name))
	url, err := s.gateway.Upload(ctx, s.VerificationBucket, objectPath, r, reg.Document.Size)
	if err != nil {
		return "", fmt.Errorf("upload verification document: %w", err)
	}

	return url, nil
}

// VerifyOTP exchanges the emailed code for a session and persists it.
func (s *SessionService) VerifyOTP(ctx context.Context, email, code string) (domain.Session, error) {
	session, err := s.gateway.VerifyOTP(ctx, email, code)
	if err != nil {
		return domain.Session{}, fmt.Errorf("verify account: %w", err)
	}

	return s.establish(ctx, session)
}

// SignOut clears the durable session and flips to unauthenticated without
// awaiting any server round-trip. It is idempotent: signing out while signed
// out changes nothing.
func (s *SessionService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.current = domain.Session{}
	return nil
}

// RefreshProfile re-fetches the profile snapshot for the active session and
// persists the update. Failure leaves the cached snapshot in place.
func (s *SessionService) RefreshProfile(ctx context.Context) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.Authenticated() {
		return domain.Profile{}, domain.ErrNoSession
	}

	profile, err := s.gateway.FetchSession(ctx, s.current.Token)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetch session: %w", err)
	}

	s.current.Profile = profile
	if err := s.store.Save(ctx, s.current); err != nil {
		s.logger.Warn("persist refreshed profile", "error", err)
	}

	return profile, nil
}

func (s *SessionService) establish(ctx context.Context, session domain.Session) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.current = session
	return session, nil
}
