package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/store"
)

// Service handles registration, login and logout.
type Service struct {
	credentials CredentialRepository
	sessions    SessionRepository
	wiper       StoreWiper
	logger      *slog.Logger
}

// NewService creates a new account service.
func NewService(credentials CredentialRepository, sessions SessionRepository, wiper StoreWiper, logger *slog.Logger) *Service {
	return &Service{
		credentials: credentials,
		sessions:    sessions,
		wiper:       wiper,
		logger:      logger,
	}
}

// RegisterRequest describes a signup form submission.
type RegisterRequest struct {
	Email    string
	Password string
	Confirm  string
}

// LoginRequest describes a login form submission.
type LoginRequest struct {
	Email    string
	Password string
}

// Register validates the form and persists the credential. A credential
// stored under a different email is silently replaced: the store has a
// single slot, a limitation kept from the original.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	if errs := ValidateRegister(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	existing, err := s.credentials.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("loading credential: %w", err)
	}
	if existing != nil && existing.Email == req.Email {
		return ErrDuplicateAccount
	}

	cred := &Credential{Email: req.Email, Password: req.Password}
	if err := s.credentials.Put(ctx, cred); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}

	s.logger.Info("account registered", "email", req.Email)
	return nil
}

// Login validates the form, compares against the stored credential and
// creates the session marker.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*session.Session, error) {
	if errs := ValidateLogin(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	cred, err := s.credentials.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading credential: %w", err)
	}
	if cred.Email != req.Email || cred.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	sess := &session.Session{Email: req.Email}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	s.logger.Info("login succeeded", "email", req.Email)
	return sess, nil
}

// Logout clears the entire record store: session, credential and
// tickets. The original app calls localStorage.clear() here, so a
// faithful port wipes everything, not just the session slot.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.wiper.Clear(ctx); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}
