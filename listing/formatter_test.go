package listing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/flixster/tmdb"
)

func TestFormatListEmpty(t *testing.T) {
	f := NewConsoleFormatter(FormatOptions{})
	assert.Equal(t, "No movies found\n", f.FormatList(NewAdapter(nil)))
	assert.Equal(t, "No movies found\n", f.FormatList(nil))
}

func TestFormatList(t *testing.T) {
	adapter := NewAdapter([]tmdb.Movie{
		{Title: "Dune", PosterPath: "/dune.jpg", Overview: "Desert planet."},
		{Title: "Alien", PosterPath: "/alien.jpg", Overview: "In space."},
	})

	t.Run("titles only", func(t *testing.T) {
		out := NewConsoleFormatter(FormatOptions{}).FormatList(adapter)
		assert.Contains(t, out, "Now playing (2 movies):")
		assert.Contains(t, out, "├── Dune\n")
		assert.Contains(t, out, "╰── Alien\n")
		assert.NotContains(t, out, "Poster:")
		assert.NotContains(t, out, "Desert planet.")
	})

	t.Run("all fields", func(t *testing.T) {
		out := NewConsoleFormatter(FormatOptions{ShowPosters: true, ShowOverview: true}).FormatList(adapter)
		assert.Contains(t, out, "│   Poster: https://image.tmdb.org/t/p/w500//dune.jpg\n")
		assert.Contains(t, out, "│   Desert planet.\n")
		assert.Contains(t, out, "    In space.\n")
	})

	t.Run("single movie", func(t *testing.T) {
		out := NewConsoleFormatter(FormatOptions{}).FormatList(NewAdapter([]tmdb.Movie{{Title: "Dune"}}))
		assert.Contains(t, out, "Now playing (1 movie):")
	})
}

func TestFormatError(t *testing.T) {
	out := NewConsoleFormatter(FormatOptions{}).FormatError(errors.New("tmdb API error: status 401"))
	assert.True(t, strings.HasPrefix(out, "\nFailed to fetch"))
	assert.Contains(t, out, "status 401")
	assert.NotContains(t, out, "No movies found")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "no width", text: "a b c", width: 0, want: []string{"a b c"}},
		{name: "fits", text: "desert planet", width: 20, want: []string{"desert planet"}},
		{name: "wraps", text: "a desert planet far away", width: 10, want: []string{"a desert", "planet far", "away"}},
		{name: "long word", text: "supercalifragilistic x", width: 5, want: []string{"supercalifragilistic", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}
