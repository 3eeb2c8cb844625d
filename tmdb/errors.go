package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrInvalidArgument indicates a missing API key or language
	ErrInvalidArgument = errors.New("invalid tmdb request argument")
)

// NetworkError is returned when the request never produced an HTTP response
type NetworkError struct {
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("tmdb request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-2xx TMDB response
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeError is returned when a successful response body is not valid JSON
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse tmdb response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Kind classifies err as "network", "http", "decode" or "unknown".
func Kind(err error) string {
	var netErr *NetworkError
	var httpErr *HTTPError
	var decErr *DecodeError
	switch {
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &decErr):
		return "decode"
	case errors.As(err, &netErr):
		return "network"
	default:
		return "unknown"
	}
}
