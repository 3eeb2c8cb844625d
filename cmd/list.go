package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/s0up4200/flixster/filter"
	"github.com/s0up4200/flixster/listing"
	"github.com/s0up4200/flixster/screen"
	"github.com/s0up4200/flixster/tmdb"
)

var (
	// Command flags
	language   string
	filterExpr string
	noPosters  bool
	noOverview bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the movies now playing in theaters",
	Long:  `Fetch the first page of TMDB's now playing movies and print them.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&language, "language", "l", "", "language tag such as en-US (default from config)")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'hasPoster() and includes(Title, \"dune\")'")
	listCmd.Flags().BoolVar(&noPosters, "no-posters", false, "hide poster URLs")
	listCmd.Flags().BoolVar(&noOverview, "no-overview", false, "hide overviews")
}

// consoleSurface prints the screen's list or error to a writer
type consoleSurface struct {
	out       io.Writer
	formatter *listing.ConsoleFormatter
}

func (s *consoleSurface) Refresh(adapter *listing.Adapter) {
	fmt.Fprint(s.out, s.formatter.FormatList(adapter))
}

func (s *consoleSurface) ShowError(err error) {
	fmt.Fprint(s.out, s.formatter.FormatError(err))
}

func runList(cmd *cobra.Command, args []string) error {
	lang := cfg.TMDB.Language
	if language != "" {
		lang = language
	}

	opts := []screen.Option{screen.WithCredentials(cfg.TMDB.APIKey, lang)}

	// Priority: command line filter > config filter
	expr := cfg.Display.Filter
	if filterExpr != "" {
		expr = filterExpr
	}
	if expr != "" {
		keep, err := filter.CreateExprFilter(expr)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", expr).Msg("Filtering now playing movies")
		opts = append(opts, screen.WithFilter(keep))
	}

	surface := &consoleSurface{
		out: cmd.OutOrStdout(),
		formatter: listing.NewConsoleFormatter(listing.FormatOptions{
			ShowPosters:  cfg.Display.ShowPosters && !noPosters,
			ShowOverview: cfg.Display.ShowOverview && !noOverview,
			Width:        cfg.Display.Width,
		}),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return showNowPlaying(ctx, tmdbClient, surface, opts...)
}

// showNowPlaying runs one screen lifecycle: start, wait for the fetch, tear down
func showNowPlaying(ctx context.Context, api tmdb.API, surface screen.Surface, opts ...screen.Option) error {
	s := screen.New(api, surface, logger, opts...)
	defer s.Close()

	if err := s.Start(ctx); err != nil {
		return err
	}

	if err := s.Wait(); err != nil {
		return fmt.Errorf("failed to fetch now playing movies (%s): %w", tmdb.Kind(err), err)
	}

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDB",
	Long:  `Test the connection and API key against TMDB and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	return testConnection(cmd.Context(), cmd.OutOrStdout(), tmdbClient)
}

// testConnection fetches once and reports the outcome
func testConnection(ctx context.Context, out io.Writer, api tmdb.API) error {
	fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", cfg.TMDB.URL)

	movies, err := api.FetchNowPlaying(ctx, cfg.TMDB.APIKey, cfg.TMDB.Language)
	if err != nil {
		var httpErr *tmdb.HTTPError
		if errors.As(err, &httpErr) && httpErr.IsUnauthorized() {
			return fmt.Errorf("TMDB rejected the API key: %w", err)
		}
		return fmt.Errorf("failed to reach TMDB: %w", err)
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintf(out, "\nTMDB Statistics:\n")
	fmt.Fprintf(out, "- Language: %s\n", cfg.TMDB.Language)
	fmt.Fprintf(out, "- Movies now playing (page 1): %d\n", len(movies))

	return nil
}
