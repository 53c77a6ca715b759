// Package session owns the session marker whose presence grants access to
// protected views.
package session

// Session marks a logged-in user. At most one exists at a time; it is
// created on login, destroyed on logout, and never expires on its own.
type Session struct {
	Email string `json:"email"`
}
