package tmdb

import (
	"context"
)

// API defines the interface for TMDB operations
type API interface {
	// FetchNowPlaying retrieves the first page of movies currently in theaters
	FetchNowPlaying(ctx context.Context, apiKey, language string) ([]Movie, error)
}
