package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TMDB v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

const nowPlayingEndpoint = "/movie/now_playing"

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: bad base URL %q", ErrInvalidConfig, baseURL)
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// FetchNowPlaying retrieves page 1 of the now playing listing for language.
// The request is bound to ctx and is never retried.
func (c *Client) FetchNowPlaying(ctx context.Context, apiKey, language string) ([]Movie, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidArgument)
	}
	if language == "" {
		return nil, fmt.Errorf("%w: language is required", ErrInvalidArgument)
	}

	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("language", language)

	body, err := c.doRequest(ctx, nowPlayingEndpoint, params)
	if err != nil {
		return nil, err
	}

	var response NowPlayingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &DecodeError{Err: err}
	}

	c.logger.Debug().
		Str("language", language).
		Int("count", len(response.Results)).
		Msg("Retrieved now playing movies from TMDB")

	if response.Results == nil {
		return []Movie{}, nil
	}
	return response.Results, nil
}

// doRequest performs a GET request and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("url", redact(requestURL, params)).
		Msg("Making TMDB API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func redact(requestURL string, params url.Values) string {
	key := params.Get("api_key")
	if key == "" {
		return requestURL
	}
	return strings.ReplaceAll(requestURL, url.QueryEscape(key), "REDACTED")
}
