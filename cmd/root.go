package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/flixster/config"
	"github.com/s0up4200/flixster/tmdb"
)

var (
	cfgFile    string
	logLevel   string
	cfg        *config.Config
	logger     zerolog.Logger
	tmdbClient *tmdb.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flixster",
	Short: "Show the movies currently playing in theaters",
	Long: `flixster fetches the "now playing" list from The Movie Database and
prints each movie with its title, overview and poster URL.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information for the version and update commands
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		if err := applyLogLevel(cfg, logLevel); err != nil {
			return err
		}
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create TMDB client
	tmdbClient, err = tmdb.NewClient(cfg.TMDB.URL, logger,
		tmdb.WithTimeout(cfg.TMDB.ClientTimeout()),
		tmdb.WithUserAgent("flixster/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	return nil
}

// applyLogLevel overrides logging.level after validating the new value
func applyLogLevel(cfg *config.Config, level string) error {
	if err := config.ValidateLogLevel(level); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	cfg.Logging.Level = level
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func defaultLogging() config.LoggingConfig {
	level := "info"
	if config.ValidateLogLevel(logLevel) == nil {
		level = logLevel
	}
	return config.LoggingConfig{Level: level, Format: "console", Color: true}
}
