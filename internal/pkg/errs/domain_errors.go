package errs

import cr "github.com/cockroachdb/errors"

// Error kinds surfaced by the rental core. Concrete errors belong to exactly
// one of these so callers can branch with Is.
var (
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrValidation   = New("validation error")
	ErrUnauthorized = New("unauthorized")
	ErrExpired      = New("expired")
	ErrInvalidState = New("invalid state")
)

// Kind returns the name of the first matching kind, or "" for opaque errors.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrNotFound):
		return "NotFound"
	case Is(err, ErrConflict):
		return "Conflict"
	case Is(err, ErrValidation):
		return "ValidationError"
	case Is(err, ErrUnauthorized):
		return "Unauthorized"
	case Is(err, ErrExpired):
		return "Expired"
	case Is(err, ErrInvalidState):
		return "InvalidState"
	default:
		return ""
	}
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// Define builds a sentinel of the given kind. It stays distinct from other
// sentinels of the same kind, so compare with the sentinel itself when the
// exact cause matters and with the kind otherwise.
func Define(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// PublicMessage returns the message of the defined error inside err, without
// the wrapping context. It returns "" when err carries no defined error.
func PublicMessage(err error) string {
	var ke *kindError
	if cr.As(err, &ke) {
		return ke.msg
	}
	return ""
}
