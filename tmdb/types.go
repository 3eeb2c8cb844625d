package tmdb

// Movie is a single entry of a now playing listing.
type Movie struct {
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	Overview   string `json:"overview"`
}

// HasPoster reports whether TMDB returned a poster path for the movie
func (m Movie) HasPoster() bool {
	return m.PosterPath != ""
}

// NowPlayingResponse represents the response from movie/now_playing
type NowPlayingResponse struct {
	Results []Movie `json:"results"`
}
