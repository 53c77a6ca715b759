package ticket

import "context"

// Repository provides persistence for the ticket collection. Every
// operation is a whole-collection read-modify-write; an empty store
// lists as an empty collection, not an error.
type Repository interface {
	List(ctx context.Context) ([]Ticket, error)
	Save(ctx context.Context, tickets []Ticket) error
}
