package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tickify/tickify/internal/domain/ticket"
	"github.com/tickify/tickify/internal/store"
)

// TicketRepository implements ticket.Repository over the ticket
// collection slot. The collection is stored as one JSON array, read and
// written whole.
type TicketRepository struct {
	store store.Store
}

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(st store.Store) *TicketRepository {
	return &TicketRepository{store: st}
}

// List returns the stored collection in insertion order. A missing slot
// is an empty collection.
func (r *TicketRepository) List(ctx context.Context) ([]ticket.Ticket, error) {
	raw, err := r.store.Get(ctx, store.KeyTickets)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var tickets []ticket.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}
	return tickets, nil
}

// Save persists the whole collection.
func (r *TicketRepository) Save(ctx context.Context, tickets []ticket.Ticket) error {
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("failed to encode tickets: %w", err)
	}
	return r.store.Set(ctx, store.KeyTickets, raw)
}
