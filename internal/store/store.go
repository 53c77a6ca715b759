// Package store provides the local record store: a string-keyed store of
// JSON-serialized values that survives process restarts. The application
// keeps exactly three records in it, mirroring the browser-local storage
// of the original app.
package store

import (
	"context"
	"errors"
)

// Record keys. The values are kept verbatim from the original app so a
// database written by one build stays readable by the next.
const (
	KeyCredential = "tickify_user"
	KeySession    = "ticketapp_session"
	KeyTickets    = "tickify_tickets"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("not found")

// Store is the record store abstraction. Implementations are not required
// to be safe for concurrent writers; the application is single-writer by
// design (last writer wins).
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every record in the store.
	Clear(ctx context.Context) error
}
