package session

import "errors"

// ErrNotAuthorized indicates no session exists.
var ErrNotAuthorized = errors.New("not authorized")
