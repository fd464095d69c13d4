package contact

import "strings"

// ValidateEnquiry applies the same server-side rules the enquiry form
// enforces inline: required name/email/message and a structurally sane
// email address. Returns field-keyed messages; empty means valid.
func ValidateEnquiry(name, email, message string) map[string]string {
	errors := map[string]string{}

	if strings.TrimSpace(name) == "" {
		errors["name"] = "Name is required."
	}
	if !validEmail(email) {
		errors["email"] = "A valid email address is required."
	}
	if strings.TrimSpace(message) == "" {
		errors["message"] = "Message is required."
	}
	return errors
}

func validEmail(email string) bool {
	parts := strings.Split(email, "@")
	if email == "" || len(parts) != 2 || parts[0] == "" {
		return false
	}
	domain := parts[1]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
