package errors

import "errors"

// PosterUnavailableError marks a poster that could not be fetched or decoded.
// It is never shown to the user.
type PosterUnavailableError struct {
	URL string
	Err error
}

func (e *PosterUnavailableError) Error() string {
	if e.Err == nil {
		return "poster unavailable (" + e.URL + ")"
	}
	return "poster unavailable (" + e.URL + "): " + e.Err.Error()
}

func (e *PosterUnavailableError) Unwrap() error {
	return e.Err
}

// NewPosterUnavailableError wraps the cause of a failed poster fetch.
func NewPosterUnavailableError(url string, err error) *PosterUnavailableError {
	return &PosterUnavailableError{URL: url, Err: err}
}

// IsPosterUnavailable reports whether err is a PosterUnavailableError (even when wrapped).
func IsPosterUnavailable(err error) bool {
	var posterErr *PosterUnavailableError
	return errors.As(err, &posterErr)
}
