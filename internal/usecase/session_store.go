package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
)

// keyedMutex hands out one mutex per key and forgets it once unused
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refLock)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// SessionStore serializes read-modify-write cycles on one session
type SessionStore struct {
	repo  domain.SessionRepository
	locks *keyedMutex
	now   func() time.Time
}

func NewSessionStore(repo domain.SessionRepository, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{repo: repo, locks: newKeyedMutex(), now: now}
}

// Now is the store's clock
func (s *SessionStore) Now() time.Time {
	return s.now()
}

// Load returns the session, or a fresh one when it does not exist yet
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()
	return s.load(ctx, sessionID)
}

// Update loads the session, applies fn and saves it. Nothing is saved when fn
// returns an error.
func (s *SessionStore) Update(ctx context.Context, sessionID string, fn func(*domain.Session) error) (*domain.Session, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}
	return session, nil
}

func (s *SessionStore) load(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperror.BadRequest("Missing session")
	}
	session, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewSession(sessionID, s.now()), nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return session, nil
}

// illegal maps a rejected transition to a 409
func illegal(err error) error {
	return apperror.Conflict("This action is not available right now", err)
}
