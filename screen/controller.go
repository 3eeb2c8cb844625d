package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/flixster/listing"
	"github.com/s0up4200/flixster/tmdb"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en-US"

// ErrAlreadyStarted is returned when Start is called more than once
var ErrAlreadyStarted = errors.New("screen already started")

// ErrClosed is returned when Start is called after Close
var ErrClosed = errors.New("screen closed")

// Surface is the rendering side of the screen. Its methods are never called
// after Close has returned.
type Surface interface {
	// Refresh is called when the backing list has been replaced
	Refresh(adapter *listing.Adapter)
	// ShowError is called when the fetch failed
	ShowError(err error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithCredentials sets the API key and language passed to the API
func WithCredentials(apiKey, language string) Option {
	return func(c *Controller) {
		c.apiKey = apiKey
		if language != "" {
			c.language = language
		}
	}
}

// WithFilter drops movies for which keep returns false before they reach the adapter
func WithFilter(keep func(tmdb.Movie) bool) Option {
	return func(c *Controller) {
		c.keep = keep
	}
}

// Controller drives a single now playing fetch and hands the result to a Surface.
// The fetch is bound to a scope owned by the controller; Close cancels it and
// any completion that arrives afterwards is dropped.
type Controller struct {
	api      tmdb.API
	surface  Surface
	logger   zerolog.Logger
	apiKey   string
	language string
	keep     func(tmdb.Movie) bool

	// deliverMu serializes result delivery against Close
	deliverMu sync.Mutex

	mu      sync.Mutex
	state   State
	adapter *listing.Adapter
	err     error
	started bool
	closed  bool
	cancel  context.CancelFunc
	group   *errgroup.Group
}

// New creates a controller in the Idle state with an empty list
func New(api tmdb.API, surface Surface, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		api:      api,
		surface:  surface,
		logger:   logger,
		language: DefaultLanguage,
		state:    StateIdle,
		adapter:  listing.NewAdapter(nil),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start launches the fetch in the background and returns immediately
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true

	scope, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	g, scope := errgroup.WithContext(scope)
	c.group = g

	c.logger.Debug().Str("language", c.language).Msg("Fetching now playing movies")

	g.Go(func() error {
		movies, err := c.api.FetchNowPlaying(scope, c.apiKey, c.language)
		c.complete(scope, movies, err)
		return err
	})

	return nil
}

// complete applies the fetch result unless the scope was torn down meanwhile.
// Logging happens before delivery; the commit and the surface call run under
// deliverMu so a concurrent Close either precedes both or waits for both.
func (c *Controller) complete(scope context.Context, movies []tmdb.Movie, err error) {
	switch {
	case scope.Err() != nil:
		// torn down; nothing to report
	case err != nil:
		c.logger.Error().
			Err(err).
			Str("kind", tmdb.Kind(err)).
			Msg("Problem fetching now playing movies")
	default:
		movies = c.filter(movies)
		c.logger.Info().Int("count", len(movies)).Msg("Fetched now playing movies")
	}

	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.closed || scope.Err() != nil {
		c.mu.Unlock()
		c.logger.Debug().Msg("Screen closed before fetch completed, dropping result")
		return
	}

	if err != nil {
		c.state = StateFailed
		c.err = err
		c.mu.Unlock()

		c.surface.ShowError(err)
		return
	}

	adapter := listing.NewAdapter(movies)
	c.adapter = adapter
	c.state = StateLoaded
	c.mu.Unlock()

	c.surface.Refresh(adapter)
}

func (c *Controller) filter(movies []tmdb.Movie) []tmdb.Movie {
	if c.keep == nil {
		return movies
	}
	kept := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if c.keep(movie) {
			kept = append(kept, movie)
		}
	}
	return kept
}

// Wait blocks until the fetch has finished and returns its error
func (c *Controller) Wait() error {
	c.mu.Lock()
	g := c.group
	c.mu.Unlock()

	if g == nil {
		return nil
	}
	return g.Wait()
}

// Close cancels a pending fetch. It is safe to call more than once. If the
// surface is being updated, Close waits for that call to return, so a Surface
// must not call Close from Refresh or ShowError.
func (c *Controller) Close() {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Adapter returns the adapter currently backing the list
func (c *Controller) Adapter() *listing.Adapter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adapter
}

// Err returns the fetch error once the controller is in StateFailed
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
