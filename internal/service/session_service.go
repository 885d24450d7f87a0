package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdesk/internal/apperr"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
)

// SessionService issues and resolves login sessions.
type SessionService struct {
	sessionRepo *repository.SessionRepository
	userRepo    *repository.UserRepository
	ttl         time.Duration
}

func NewSessionService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, ttl time.Duration) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, userRepo: userRepo, ttl: ttl}
}

// TTL reports the configured session lifetime (the cookie max-age).
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a fresh session for the user.
func (s *SessionService) Issue(ctx context.Context, user *model.User, now time.Time) (*model.Session, error) {
	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve maps a session token to its user. Unknown, expired and orphaned
// tokens all yield ErrInvalidCredentials.
func (s *SessionService) Resolve(ctx context.Context, token string, now time.Time) (*model.User, error) {
	session, err := s.sessionRepo.FindValid(ctx, token, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.ErrInvalidCredentials
	}
	return user, nil
}

// Revoke deletes a session. Revoking an unknown token is a no-op.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// DeleteExpired sweeps sessions past their expiry.
func (s *SessionService) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, now)
}
