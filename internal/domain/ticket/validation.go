package ticket

import "strings"

const minDescriptionLen = 10

// ValidateFields checks the three user-editable ticket fields and
// returns a field -> message map; an empty map means all fields pass.
// The description is optional, but when present it must carry at least
// ten characters.
func ValidateFields(title, description string, status Status) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(title) == "" {
		errs["title"] = "Title is required"
	}
	if description != "" && len(description) < minDescriptionLen {
		errs["description"] = "Description must be at least 10 characters"
	}
	if !status.Valid() {
		errs["status"] = "Invalid status"
	}
	return errs
}
