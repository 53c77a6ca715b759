package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/store"
)

// SessionRepository implements session.Repository over the single
// session slot.
type SessionRepository struct {
	store store.Store
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(st store.Store) *SessionRepository {
	return &SessionRepository{store: st}
}

// Get returns the session marker, or store.ErrNotFound when nobody is
// logged in.
func (r *SessionRepository) Get(ctx context.Context) (*session.Session, error) {
	raw, err := r.store.Get(ctx, store.KeySession)
	if err != nil {
		return nil, err
	}

	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

// Put stores the session marker.
func (r *SessionRepository) Put(ctx context.Context, sess *session.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.store.Set(ctx, store.KeySession, raw)
}

// Delete removes the session marker.
func (r *SessionRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeySession)
}
