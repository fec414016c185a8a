package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"careerai-web/internal/domain"
	"careerai-web/pkg/logger"
	"careerai-web/pkg/metrics"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// SessionRepository keeps sessions in process memory. Values are stored
// serialized so that callers never share state with the store.
type SessionRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source, for tests
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.now = now
	return r
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok || !r.now().Before(e.expiresAt) {
		return nil, domain.ErrNotFound
	}

	var session domain.Session
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, fmt.Errorf("memory: decode session %s: %w", id, err)
	}
	session.Normalize()
	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("memory: encode session %s: %w", session.ID, err)
	}

	r.mu.Lock()
	r.entries[session.ID] = entry{data: data, expiresAt: r.now().Add(r.ttl)}
	size := len(r.entries)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(size))
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.entries, id)
	size := len(r.entries)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(size))
	return nil
}

// Sweep drops expired sessions and returns how many were removed
func (r *SessionRepository) Sweep() int {
	now := r.now()

	r.mu.Lock()
	removed := 0
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	size := len(r.entries)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(size))
	return removed
}

// Len is the number of stored sessions, expired or not
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// StartSweeper runs Sweep every interval until ctx is done
func (r *SessionRepository) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					logger.Log.Debug("expired sessions swept", "count", n)
				}
			}
		}
	}()
}
