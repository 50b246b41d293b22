package omdb

// NotAvailable is substituted for every key missing from a response.
const NotAvailable = "N/A"

// Keys of the OMDb response that the client extracts.
const (
	KeyTitle      = "Title"
	KeyYear       = "Year"
	KeyGenre      = "Genre"
	KeyPlot       = "Plot"
	KeyDirector   = "Director"
	KeyIMDbRating = "imdbRating"
	KeyPoster     = "Poster"
	KeyActors     = "Actors"
	KeyRated      = "Rated"
	KeyRuntime    = "Runtime"
	KeyType       = "Type"
)

// FieldKeys lists the extracted keys in response order.
var FieldKeys = []string{
	KeyTitle,
	KeyYear,
	KeyGenre,
	KeyPlot,
	KeyDirector,
	KeyIMDbRating,
	KeyPoster,
	KeyActors,
	KeyRated,
	KeyRuntime,
	KeyType,
}

// Fields maps each extracted key to its text value.
type Fields map[string]string

// Get returns the value for key, or NotAvailable when it is missing.
func (f Fields) Get(key string) string {
	return FieldOr(f, key, NotAvailable)
}

// PosterURL returns the poster URL; it is NotAvailable when the service sent none.
func (f Fields) PosterURL() string {
	return f.Get(KeyPoster)
}

// FieldOr returns values[key] if present and fallback otherwise.
func FieldOr(values map[string]string, key, fallback string) string {
	if v, ok := values[key]; ok {
		return v
	}
	return fallback
}
