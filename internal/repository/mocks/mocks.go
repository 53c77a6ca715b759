// Package mocks provides testify mocks for the domain repository
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tickify/tickify/internal/domain/account"
	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/domain/ticket"
)

// CredentialRepository is a mock for account.CredentialRepository.
type CredentialRepository struct {
	mock.Mock
}

func (m *CredentialRepository) Get(ctx context.Context) (*account.Credential, error) {
	args := m.Called(ctx)
	if cred, ok := args.Get(0).(*account.Credential); ok {
		return cred, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CredentialRepository) Put(ctx context.Context, cred *account.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

// SessionRepository is a mock for session.Repository (and the narrower
// account.SessionRepository).
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Get(ctx context.Context) (*session.Session, error) {
	args := m.Called(ctx)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Put(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// TicketRepository is a mock for ticket.Repository.
type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) List(ctx context.Context) ([]ticket.Ticket, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]ticket.Ticket); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TicketRepository) Save(ctx context.Context, tickets []ticket.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}

// StoreWiper is a mock for account.StoreWiper.
type StoreWiper struct {
	mock.Mock
}

func (m *StoreWiper) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
