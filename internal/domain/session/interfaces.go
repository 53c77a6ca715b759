package session

import "context"

// Repository provides persistence for the session marker.
type Repository interface {
	Get(ctx context.Context) (*Session, error)
	Put(ctx context.Context, sess *Session) error
	Delete(ctx context.Context) error
}
