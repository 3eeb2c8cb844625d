// Package tmdb provides a client for the now playing endpoint of The Movie Database API.
//
// The client issues a single GET per call and never retries. Requests are bound
// to the caller's context, so cancelling the context aborts a pending request.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient("", logger, tmdb.WithTimeout(30*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movies, err := client.FetchNowPlaying(ctx, apiKey, "en-US")
//
// # Error Handling
//
// Failures are reported as one of three types:
//
//   - NetworkError: the request never produced a response (includes cancellation)
//   - HTTPError: a non-2xx status, with IsUnauthorized and IsNotFound helpers
//   - DecodeError: the body of a successful response was not valid JSON
//
// A response without a results field is an empty list, not an error.
package tmdb
