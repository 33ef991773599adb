// Package memory holds process-lifetime repositories. Nothing here survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/repository"

	"github.com/google/uuid"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*entity.Session
	idleTimeout time.Duration
	now         func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(cfg *config.Config) repository.SessionRepository {
	return newSessionRepository(cfg.Session.IdleTimeout, time.Now)
}

func newSessionRepository(idleTimeout time.Duration, now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions:    make(map[uuid.UUID]*entity.Session),
		idleTimeout: idleTimeout,
		now:         now,
	}
}

// Create stores a copy of session and sweeps expired sessions.
func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.sweepLocked()
	repo.sessions[session.ID] = session.Clone()

	return nil
}

// Get returns a copy of the session.
func (repo *sessionRepository) Get(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.liveLocked(id)
	if err != nil {
		return nil, err
	}

	return stored.Clone(), nil
}

// Update runs fn on a working copy and stores it only when fn succeeds.
func (repo *sessionRepository) Update(_ context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, err := repo.liveLocked(id)
	if err != nil {
		return nil, err
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	working.ID = id
	working.UpdatedAt = repo.now()
	repo.sessions[id] = working

	return working.Clone(), nil
}

func (repo *sessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, id)

	return nil
}

func (repo *sessionRepository) liveLocked(id uuid.UUID) (*entity.Session, error) {
	stored, ok := repo.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	if repo.expired(stored) {
		delete(repo.sessions, id)

		return nil, domainerrors.ErrSessionNotFound
	}

	return stored, nil
}

func (repo *sessionRepository) expired(s *entity.Session) bool {
	return repo.idleTimeout > 0 && repo.now().Sub(s.UpdatedAt) > repo.idleTimeout
}

func (repo *sessionRepository) sweepLocked() {
	for id, s := range repo.sessions {
		if repo.expired(s) {
			delete(repo.sessions, id)
		}
	}
}
