package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "must not be empty")

	if err.Error() != "title: must not be empty" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "title: must not be empty")
	}

	if !IsValidationError(err) {
		t.Fatalf("IsValidationError returned false for ValidationError")
	}

	wrapped := fmt.Errorf("search: %w", err)
	if !IsValidationError(wrapped) {
		t.Fatalf("IsValidationError returned false for wrapped ValidationError")
	}

	bare := &ValidationError{Message: "bad input"}
	if bare.Error() != "bad input" {
		t.Fatalf("Error message = %q, want %q", bare.Error(), "bad input")
	}
}

func TestTransportError(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := NewTransportError("omdb search", cause)

	if err.Error() != "omdb search: connection refused" {
		t.Fatalf("Error message = %q", err.Error())
	}
	if !IsTransportError(err) {
		t.Fatalf("IsTransportError returned false for TransportError")
	}
	if !stdErrors.Is(err, cause) {
		t.Fatalf("TransportError does not unwrap to its cause")
	}
	if IsNotFoundError(err) || IsValidationError(err) {
		t.Fatalf("TransportError matched an unrelated error type")
	}
}

func TestStatusError(t *testing.T) {
	err := NewStatusError("omdb search", 503)

	if err.Error() != "omdb search: HTTP 503" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "omdb search: HTTP 503")
	}

	withCause := &TransportError{Op: "omdb search", StatusCode: 401, Err: stdErrors.New("Invalid API key!")}
	if withCause.Error() != "omdb search: HTTP 401: Invalid API key!" {
		t.Fatalf("Error message = %q", withCause.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Qwertyuiop", "Movie not found!")

	if err.Error() != "no match for Qwertyuiop: Movie not found!" {
		t.Fatalf("Error message = %q", err.Error())
	}
	if !IsNotFoundError(stdErrors.Join(err)) {
		t.Fatalf("IsNotFoundError returned false for joined NotFoundError")
	}

	noReason := NewNotFoundError("Qwertyuiop", "")
	if noReason.Error() != "no match for Qwertyuiop" {
		t.Fatalf("Error message = %q", noReason.Error())
	}
}

func TestPosterUnavailableError(t *testing.T) {
	cause := stdErrors.New("unsupported protocol scheme")
	err := NewPosterUnavailableError("N/A", cause)

	if err.Error() != "poster unavailable (N/A): unsupported protocol scheme" {
		t.Fatalf("Error message = %q", err.Error())
	}
	if !IsPosterUnavailable(err) {
		t.Fatalf("IsPosterUnavailable returned false for PosterUnavailableError")
	}
	if !stdErrors.Is(err, cause) {
		t.Fatalf("PosterUnavailableError does not unwrap to its cause")
	}

	noCause := &PosterUnavailableError{URL: "x"}
	if noCause.Error() != "poster unavailable (x)" {
		t.Fatalf("Error message = %q", noCause.Error())
	}
}
