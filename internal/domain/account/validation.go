package account

import (
	"regexp"
	"strings"
)

// Matches the original app's permissive email check: something, an @,
// something, a dot, something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const minPasswordLen = 6

// ValidateRegister checks a signup form and returns a field -> message
// map; an empty map means the form is valid.
func ValidateRegister(req RegisterRequest) map[string]string {
	errs := validateCredentials(req.Email, req.Password)
	if req.Confirm == "" {
		errs["confirm"] = "Please confirm your password"
	} else if req.Confirm != req.Password {
		errs["confirm"] = "Passwords do not match"
	}
	return errs
}

// ValidateLogin checks a login form. The original validates the form
// before it ever compares against the stored credential.
func ValidateLogin(req LoginRequest) map[string]string {
	return validateCredentials(req.Email, req.Password)
}

func validateCredentials(email, password string) map[string]string {
	errs := make(map[string]string)
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email format"
	}
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < minPasswordLen:
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}
