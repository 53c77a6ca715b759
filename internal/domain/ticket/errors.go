package ticket

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrTicketNotFound indicates an update referenced an id that is not in
// the collection.
var ErrTicketNotFound = errors.New("ticket not found")

// ValidationError carries a per-field message map for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
