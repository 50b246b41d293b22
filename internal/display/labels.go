// Package display turns OMDb fields into the text shown for a search result.
package display

import (
	"github.com/lepinkainen/movieinfo/internal/omdb"
)

// Labels holds the formatted text of every field label.
type Labels struct {
	Title    string
	Genre    string
	Summary  string
	Director string
	Rating   string
	Actors   string
	Rated    string
	Runtime  string
	Type     string
}

// FromFields formats fields into labels. Missing keys render as omdb.NotAvailable.
func FromFields(f omdb.Fields) Labels {
	return Labels{
		Title:    f.Get(omdb.KeyTitle) + " (" + f.Get(omdb.KeyYear) + ")",
		Genre:    "Genre: " + f.Get(omdb.KeyGenre),
		Summary:  "Summary: " + f.Get(omdb.KeyPlot),
		Director: "Director: " + f.Get(omdb.KeyDirector),
		Rating:   "IMDb Rating: " + f.Get(omdb.KeyIMDbRating),
		Actors:   "Actors: " + f.Get(omdb.KeyActors),
		Rated:    "Rated: " + f.Get(omdb.KeyRated),
		Runtime:  "Duration: " + f.Get(omdb.KeyRuntime),
		Type:     "Type: " + f.Get(omdb.KeyType),
	}
}

// Lines returns the labels in display order.
func (l Labels) Lines() []string {
	return []string{
		l.Title,
		l.Genre,
		l.Summary,
		l.Director,
		l.Rating,
		l.Actors,
		l.Rated,
		l.Runtime,
		l.Type,
	}
}

// IsZero reports whether no result has been displayed yet.
func (l Labels) IsZero() bool {
	return l == Labels{}
}
