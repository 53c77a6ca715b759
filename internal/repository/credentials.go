// Package repository implements the domain repositories on top of the
// record store, marshaling each record slot to and from JSON.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tickify/tickify/internal/domain/account"
	"github.com/tickify/tickify/internal/store"
)

// CredentialRepository implements account.CredentialRepository over the
// single credential slot.
type CredentialRepository struct {
	store store.Store
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(st store.Store) *CredentialRepository {
	return &CredentialRepository{store: st}
}

// Get returns the stored credential, or store.ErrNotFound when no
// account has been registered.
func (r *CredentialRepository) Get(ctx context.Context) (*account.Credential, error) {
	raw, err := r.store.Get(ctx, store.KeyCredential)
	if err != nil {
		return nil, err
	}

	var cred account.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, fmt.Errorf("failed to decode credential: %w", err)
	}
	return &cred, nil
}

// Put stores the credential, overwriting any prior record.
func (r *CredentialRepository) Put(ctx context.Context, cred *account.Credential) error {
	raw, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}
	return r.store.Set(ctx, store.KeyCredential, raw)
}
