package apperr

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared by services and the HTTP layer.
var (
	// ErrNotFound covers both nonexistent resources and resources owned by
	// another user, so responses never reveal which of the two it was.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for any authentication failure,
	// whether the email is unknown or the password wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldErrors maps form fields to user-facing validation messages. It is
// the recoverable outcome of any create/update operation and renders as a
// field-keyed JSON object rather than a bare error string.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// NewField builds a FieldErrors holding a single message.
func NewField(field, message string) FieldErrors {
	return FieldErrors{field: message}
}
