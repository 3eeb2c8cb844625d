package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			URL:      "https://api.themoviedb.org/3",
			APIKey:   "valid-api-key",
			Language: "en-US",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(cfg *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid config",
			modify: func(cfg *Config) {},
		},
		{
			name:        "missing API key",
			modify:      func(cfg *Config) { cfg.TMDB.APIKey = "" },
			wantErr:     true,
			errContains: "tmdb.api_key",
		},
		{
			name:        "placeholder API key",
			modify:      func(cfg *Config) { cfg.TMDB.APIKey = "your-api-key-here" },
			wantErr:     true,
			errContains: "tmdb.api_key",
		},
		{
			name:        "missing URL",
			modify:      func(cfg *Config) { cfg.TMDB.URL = "" },
			wantErr:     true,
			errContains: "tmdb.url",
		},
		{
			name:        "missing language",
			modify:      func(cfg *Config) { cfg.TMDB.Language = "" },
			wantErr:     true,
			errContains: "tmdb.language",
		},
		{
			name:   "free form language",
			modify: func(cfg *Config) { cfg.TMDB.Language = "pt" },
		},
		{
			name:        "bad timeout",
			modify:      func(cfg *Config) { cfg.TMDB.Timeout = "soon" },
			wantErr:     true,
			errContains: "tmdb.timeout",
		},
		{
			name:        "negative width",
			modify:      func(cfg *Config) { cfg.Display.Width = -1 },
			wantErr:     true,
			errContains: "display.width",
		},
		{
			name:        "invalid logging level",
			modify:      func(cfg *Config) { cfg.Logging.Level = "trace" },
			wantErr:     true,
			errContains: "logging level",
		},
		{
			name:        "invalid logging format",
			modify:      func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr:     true,
			errContains: "logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
tmdb:
  api_key: file-key
  language: fr-FR
  timeout: 15s
display:
  show_posters: false
  filter: hasPoster()
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, "fr-FR", cfg.TMDB.Language)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.URL)
	assert.Equal(t, 15*time.Second, cfg.TMDB.ClientTimeout())
	assert.False(t, cfg.Display.ShowPosters)
	assert.True(t, cfg.Display.ShowOverview)
	assert.Equal(t, "hasPoster()", cfg.Display.Filter)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  language: en-GB\n"), 0o600))

	t.Setenv("FLIXSTER_TMDB_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "en-GB", cfg.TMDB.Language)
}

func TestLoadWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLIXSTER_TMDB_API_KEY", "env-key")
	t.Setenv("FLIXSTER_TMDB_LANGUAGE", "de-DE")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "de-DE", cfg.TMDB.Language)
	assert.Zero(t, cfg.TMDB.ClientTimeout())
}

func TestLoadMissingAPIKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmdb.api_key")
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, ValidateLogLevel(level), level)
	}

	for _, level := range []string{"", "trace", "INFO", "fatal"} {
		err := ValidateLogLevel(level)
		require.Error(t, err, level)
		assert.Contains(t, err.Error(), "invalid logging level")
	}
}
