package tui

import (
	"github.com/lepinkainen/movieinfo/internal/errors"
)

// AdvisoryKind identifies one of the blocking notices.
type AdvisoryKind int

const (
	// AdvisoryValidation is shown for an empty title.
	AdvisoryValidation AdvisoryKind = iota + 1
	// AdvisoryNotFound is shown when the service has no match.
	AdvisoryNotFound
	// AdvisoryNetwork is shown when the metadata request failed.
	AdvisoryNetwork
)

type advisory struct {
	kind  AdvisoryKind
	title string
	text  string
}

var advisories = map[AdvisoryKind]advisory{
	AdvisoryValidation: {kind: AdvisoryValidation, title: "Input Error!", text: "Please Input Movie Title!"},
	AdvisoryNotFound:   {kind: AdvisoryNotFound, title: "Movie Not Found!", text: "There seems to be no match!"},
	AdvisoryNetwork:    {kind: AdvisoryNetwork, title: "Network Error", text: "There was a failure when fetching data from the API!"},
}

// advisoryFor maps a metadata error to the notice shown for it.
func advisoryFor(err error) advisory {
	switch {
	case errors.IsValidationError(err):
		return advisories[AdvisoryValidation]
	case errors.IsNotFoundError(err):
		return advisories[AdvisoryNotFound]
	default:
		return advisories[AdvisoryNetwork]
	}
}
