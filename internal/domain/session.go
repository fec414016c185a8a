package domain

import (
	"context"
	"time"
)

// Session holds one visitor's view state. Each flow's state is independent
// and lives only as long as the session does.
type Session struct {
	ID        string        `json:"id"`
	Guidance  GuidanceState `json:"guidance"`
	Resume    ResumeState   `json:"resume"`
	Jobs      JobState      `json:"jobs"`
	Flash     *Notification `json:"flash,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewSession returns a session with every flow at its initial phase
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Guidance:  NewGuidanceState(),
		Resume:    NewResumeState(),
		Jobs:      NewJobState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Normalize restores invariants lost in serialization (nil maps, empty
// phases) so a decoded session behaves like a fresh one.
func (s *Session) Normalize() {
	if s.Guidance.Phase == "" {
		s.Guidance = NewGuidanceState()
	}
	if s.Guidance.Answers == nil {
		s.Guidance.Answers = QuizAnswerSet{}
	}
	if s.Resume.Phase == "" {
		s.Resume = NewResumeState()
	}
	if s.Jobs.Saved == nil {
		s.Jobs.Saved = JobIDSet{}
	}
}

// PopFlash returns the pending notification and clears it
func (s *Session) PopFlash() *Notification {
	n := s.Flash
	s.Flash = nil
	return n
}

// ============================================================================
// Repository Interface
// ============================================================================

type SessionRepository interface {
	// Get returns ErrNotFound for unknown or expired sessions
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// ============================================================================
// Usecase Interface
// ============================================================================

type SessionUsecase interface {
	// SetFlash stores a notification for the next page render
	SetFlash(ctx context.Context, sessionID string, n *Notification) error
	// PopFlash consumes the pending notification, if any
	PopFlash(ctx context.Context, sessionID string) (*Notification, error)
}
