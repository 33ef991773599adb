package repository

import (
	"context"

	"kinconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores wizard sessions for the life of the process.
// Sessions are copied in and out so callers never share state.
// A missing or expired session is ErrSessionNotFound from the domain errors package.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Update applies fn to the stored session atomically. If fn returns an
	// error nothing is stored and the error is returned.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
