package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

const (
	storeDirMode    = 0o700
	sessionFileMode = 0o600

	tokenFile   = "token"
	profileFile = "profile.toml"
)

// Store keeps the session under two files in root: the opaque token and a
// TOML profile snapshot. Absence of the token file is the sole signed-out
// signal.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

type profileSchema struct {
	ID          string `toml:"id"`
	FullName    string `toml:"full_name"`
	Email       string `toml:"email"`
	Phone       string `toml:"phone,omitempty"`
	AvatarURL   string `toml:"avatar_url,omitempty"`
	Institution string `toml:"institution,omitempty"`
	Verified    bool   `toml:"verified"`
	CreatedAt   string `toml:"created_at,omitempty"`
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	token, err := os.ReadFile(filepath.Join(s.root, tokenFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read session token: %w", err)
	}
	if len(token) == 0 {
		return domain.Session{}, domain.ErrNoSession
	}

	data, err := os.ReadFile(filepath.Join(s.root, profileFile))
	if err != nil {
		return domain.Session{}, fmt.Errorf("read profile snapshot: %w", errors.Join(domain.ErrSessionCorrupted, err))
	}

	var schema profileSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return domain.Session{}, fmt.Errorf("decode profile snapshot: %w", errors.Join(domain.ErrSessionCorrupted, err))
	}

	return domain.Session{Token: string(token), Profile: fromSchema(schema)}, nil
}

func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !session.Authenticated() {
		return errors.New("refusing to save a session without a token")
	}

	data, err := toml.Marshal(toSchema(session.Profile))
	if err != nil {
		return fmt.Errorf("encode profile snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.root, profileFile), data, sessionFileMode); err != nil {
		return fmt.Errorf("write profile snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.root, tokenFile), []byte(session.Token), sessionFileMode); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}

	return nil
}

// Clear removes both session files; clearing an already-empty store is a
// no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{tokenFile, profileFile} {
		err := os.Remove(filepath.Join(s.root, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}

	return nil
}

func toSchema(p domain.Profile) profileSchema {
	schema := profileSchema{
		ID:          string(p.ID),
		FullName:    p.FullName,
		Email:       p.Email,
		Phone:       p.Phone,
		AvatarURL:   p.AvatarURL,
		Institution: p.Institution,
		Verified:    p.Verified,
	}
	if !p.CreatedAt.IsZero() {
		schema.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return schema
}

func fromSchema(schema profileSchema) domain.Profile {
	profile := domain.Profile{
		ID:          domain.ProfileID(schema.ID),
		FullName:    schema.FullName,
		Email:       schema.Email,
		Phone:       schema.Phone,
		AvatarURL:   schema.AvatarURL,
		Institution: schema.Institution,
		Verified:    schema.Verified,
	}
	if schema.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, schema.CreatedAt); err == nil {
			profile.CreatedAt = parsed
		}
	}
	return profile
}
