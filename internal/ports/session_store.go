package ports

import (
	"context"

	"github.com/fharpR4/roomie-app/internal/domain"
)

// SessionStore persists the session across runs. Load returns
// domain.ErrNoSession when nothing is stored; Clear is idempotent.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
