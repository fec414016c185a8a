package usecase

import (
	"context"

	"careerai-web/internal/domain"
)

type sessionUsecase struct {
	store *SessionStore
}

func NewSessionUsecase(store *SessionStore) domain.SessionUsecase {
	return &sessionUsecase{store: store}
}

func (u *sessionUsecase) SetFlash(ctx context.Context, sessionID string, n *domain.Notification) error {
	if n == nil {
		return nil
	}
	_, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		s.Flash = n
		return nil
	})
	return err
}

func (u *sessionUsecase) PopFlash(ctx context.Context, sessionID string) (*domain.Notification, error) {
	var flash *domain.Notification
	_, err := u.store.Update(ctx, sessionID, func(s *domain.Session) error {
		flash = s.PopFlash()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flash, nil
}
