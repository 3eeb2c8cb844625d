package config

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	URL      string `mapstructure:"url"`
	APIKey   string `mapstructure:"api_key"`
	Language string `mapstructure:"language"`
	// Timeout is a Go duration string; empty means no client timeout
	Timeout string `mapstructure:"timeout"`
}

// DisplayConfig controls how the now playing list is printed
type DisplayConfig struct {
	ShowPosters  bool   `mapstructure:"show_posters"`
	ShowOverview bool   `mapstructure:"show_overview"`
	Width        int    `mapstructure:"width"`
	Filter       string `mapstructure:"filter"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
