// Package ticket owns the ticket collection: create, update, delete,
// list, and the derived status counts shown on the dashboard.
package ticket

// Status is the workflow status of a ticket.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Ticket is a unit of trackable work. JSON field names match the record
// format the original app wrote, so existing stores stay readable.
type Ticket struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// Stats summarizes the collection for the dashboard. Tickets that are
// in_progress count toward Total only, matching the original: they sit
// in neither the open nor the resolved bucket.
type Stats struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
}
