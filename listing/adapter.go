package listing

import (
	"errors"
	"fmt"

	"github.com/s0up4200/flixster/tmdb"
)

const (
	// ImageBaseURL is the TMDB image CDN root
	ImageBaseURL = "https://image.tmdb.org/t/p/"
	// PosterSize is the size segment used for list posters
	PosterSize = "w500"
)

// ErrIndexOutOfRange is returned by RowAt for an index outside [0, RowCount())
var ErrIndexOutOfRange = errors.New("row index out of range")

// Row holds the display-ready fields of one movie
type Row struct {
	Title     string
	Body      string
	PosterURL string
}

// Adapter maps an ordered list of movies to rows. It is immutable; a new
// listing means a new Adapter.
type Adapter struct {
	rows []Row
}

// NewAdapter builds one row per movie, keeping the API order
func NewAdapter(movies []tmdb.Movie) *Adapter {
	rows := make([]Row, len(movies))
	for i, movie := range movies {
		rows[i] = Row{
			Title:     movie.Title,
			Body:      movie.Overview,
			PosterURL: PosterURL(movie.PosterPath),
		}
	}
	return &Adapter{rows: rows}
}

// RowCount returns the number of rows
func (a *Adapter) RowCount() int {
	if a == nil {
		return 0
	}
	return len(a.rows)
}

// RowAt returns the row at index i
func (a *Adapter) RowAt(i int) (Row, error) {
	if i < 0 || i >= a.RowCount() {
		return Row{}, fmt.Errorf("%w: %d (rows: %d)", ErrIndexOutOfRange, i, a.RowCount())
	}
	return a.rows[i], nil
}

// Rows returns a copy of all rows
func (a *Adapter) Rows() []Row {
	if a == nil {
		return nil
	}
	out := make([]Row, len(a.rows))
	copy(out, a.rows)
	return out
}

// PosterURL joins the CDN root, the poster size and posterPath as-is.
// TMDB poster paths start with "/", so the result carries a double slash.
func PosterURL(posterPath string) string {
	return ImageBaseURL + PosterSize + "/" + posterPath
}
