package account

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials indicates the email/password pair doesn't
	// match the stored credential (or no credential exists).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateAccount indicates a credential with the same email
	// already exists.
	ErrDuplicateAccount = errors.New("account already exists")
)

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
