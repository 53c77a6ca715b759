// Package account owns the single stored credential and the login/logout
// flow built on top of it.
package account

// Credential is the one stored email/password pair used for login
// comparison. The store has exactly one slot for it: a later signup
// overwrites an earlier one unless the emails match.
//
// The password is stored and compared in plaintext. That is the demo
// trust model, not an oversight.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
