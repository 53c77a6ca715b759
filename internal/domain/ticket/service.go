package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// createdAtLayout renders timestamps the way the original app's
// toLocaleString() did.
const createdAtLayout = "1/2/2006, 3:04:05 PM"

// Service handles ticket operations.
type Service struct {
	tickets Repository
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new ticket service.
func NewService(tickets Repository, logger *slog.Logger) *Service {
	return &Service{
		tickets: tickets,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateRequest describes a new-ticket form submission.
type CreateRequest struct {
	Title       string
	Description string
	Status      Status
}

// UpdateRequest describes an edit of an existing ticket.
type UpdateRequest struct {
	ID          int64
	Title       string
	Description string
	Status      Status
}

// Create validates the fields, assigns an id and creation timestamp,
// appends the ticket and persists the collection.
//
// Ids start from the wall clock in milliseconds (the original's
// Date.now()) but are bumped above the collection's current maximum, so
// rapid successive creations cannot collide.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Ticket, error) {
	if errs := ValidateFields(req.Title, req.Description, req.Status); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	all, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tickets: %w", err)
	}

	now := s.now()
	id := now.UnixMilli()
	for _, t := range all {
		if t.ID >= id {
			id = t.ID + 1
		}
	}

	created := Ticket{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CreatedAt:   now.Format(createdAtLayout),
	}

	if err := s.tickets.Save(ctx, append(all, created)); err != nil {
		return nil, fmt.Errorf("saving tickets: %w", err)
	}

	s.logger.Info("ticket created", "id", created.ID, "status", created.Status)
	return &created, nil
}

// Update validates the fields and replaces the matching entry in place;
// its position in the collection and its creation timestamp are
// unchanged. Returns ErrTicketNotFound when the id is absent.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Ticket, error) {
	if errs := ValidateFields(req.Title, req.Description, req.Status); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	all, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tickets: %w", err)
	}

	for i, t := range all {
		if t.ID != req.ID {
			continue
		}
		updated := Ticket{
			ID:          t.ID,
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			CreatedAt:   t.CreatedAt,
		}
		all[i] = updated
		if err := s.tickets.Save(ctx, all); err != nil {
			return nil, fmt.Errorf("saving tickets: %w", err)
		}
		s.logger.Info("ticket updated", "id", updated.ID, "status", updated.Status)
		return &updated, nil
	}

	return nil, ErrTicketNotFound
}

// Delete removes the ticket with the given id and persists the
// collection. Deleting an absent id leaves the collection unchanged and
// is not an error. The interactive confirmation step lives in the view
// layer; by the time this runs the user has already confirmed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return fmt.Errorf("loading tickets: %w", err)
	}

	kept := all[:0]
	for _, t := range all {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(all) {
		return nil
	}

	if err := s.tickets.Save(ctx, kept); err != nil {
		return fmt.Errorf("saving tickets: %w", err)
	}

	s.logger.Info("ticket deleted", "id", id)
	return nil
}

// List returns the full collection in insertion order.
func (s *Service) List(ctx context.Context) ([]Ticket, error) {
	return s.tickets.List(ctx)
}

// Stats returns the dashboard counts.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("loading tickets: %w", err)
	}

	stats := Stats{Total: len(all)}
	for _, t := range all {
		switch t.Status {
		case StatusOpen:
			stats.Open++
		case StatusClosed:
			stats.Resolved++
		}
	}
	return stats, nil
}
