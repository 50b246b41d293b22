package errors

import "errors"

// NotFoundError represents a well-formed reply in which the service reported
// that nothing matched the query.
type NotFoundError struct {
	Query  string
	Reason string // service supplied text, may be empty
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return "no match for " + e.Query + ": " + e.Reason
	}
	return "no match for " + e.Query
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(query, reason string) *NotFoundError {
	return &NotFoundError{Query: query, Reason: reason}
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}
