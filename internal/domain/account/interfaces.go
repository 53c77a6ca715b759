package account

import (
	"context"

	"github.com/tickify/tickify/internal/domain/session"
)

// CredentialRepository provides persistence for the credential slot.
type CredentialRepository interface {
	Get(ctx context.Context) (*Credential, error)
	Put(ctx context.Context, cred *Credential) error
}

// SessionRepository creates the session marker on login.
type SessionRepository interface {
	Put(ctx context.Context, sess *session.Session) error
}

// StoreWiper clears the whole record store on logout.
type StoreWiper interface {
	Clear(ctx context.Context) error
}
