package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tickify/tickify/internal/store"
)

// Service answers the authorization question for protected views.
type Service struct {
	sessions Repository
	logger   *slog.Logger
}

// NewService creates a new session service.
func NewService(sessions Repository, logger *slog.Logger) *Service {
	return &Service{sessions: sessions, logger: logger}
}

// Current returns the active session, or ErrNotAuthorized when none
// exists.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return sess, nil
}

// IsAuthorized reports whether a session exists. Pure read, no side
// effects; callers check on every render of a protected view.
func (s *Service) IsAuthorized(ctx context.Context) bool {
	_, err := s.Current(ctx)
	if err != nil && !errors.Is(err, ErrNotAuthorized) {
		s.logger.Error("session check failed", "error", err)
	}
	return err == nil
}
