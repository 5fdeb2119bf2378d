package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid reports whether the address is a plain, syntactically
// valid email. Display names and angle brackets are rejected.
func IsEmailValid(email string) bool {
	if strings.ContainsAny(email, "<> ") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
