package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jywlabs/specgen/internal/generator"
	"github.com/jywlabs/specgen/internal/store"
	"github.com/jywlabs/specgen/internal/template"
)

// Environment variables that override secrets from config.yaml.
const (
	EnvDatabaseURL = "SPECGEN_DATABASE_URL"
	EnvDBAuthToken = "SPECGEN_DB_AUTH_TOKEN"
	EnvGeminiKey   = "GEMINI_API_KEY"
	EnvGoogleKey   = "GOOGLE_API_KEY"
)

// Config is the resolved specgen configuration.
type Config struct {
	Storage    StorageConfig
	Autosave   AutosaveConfig
	Generation GenerationConfig
	Logging    LoggingConfig
}

// StorageConfig selects the document store.
type StorageConfig struct {
	Driver    string
	Path      string // absolute once loaded
	URL       string
	AuthToken string
}

// AutosaveConfig controls draft autosave.
type AutosaveConfig struct {
	Delay time.Duration
}

// GenerationConfig controls AI generation.
type GenerationConfig struct {
	Provider        string
	Model           string
	MaxOutputTokens int
	Timeout         time.Duration
	APIKey          string
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string
	File  string // absolute once loaded
}

// rawConfig is used for YAML unmarshaling to distinguish missing keys from explicit empty values.
type rawConfig struct {
	Storage struct {
		Driver    *string `yaml:"driver"`
		Path      *string `yaml:"path"`
		URL       *string `yaml:"url"`
		AuthToken *string `yaml:"authToken"`
	} `yaml:"storage"`
	Autosave struct {
		Delay *string `yaml:"delay"`
	} `yaml:"autosave"`
	Generation struct {
		Provider        *string `yaml:"provider"`
		Model           *string `yaml:"model"`
		MaxOutputTokens *int    `yaml:"maxOutputTokens"`
		Timeout         *string `yaml:"timeout"`
	} `yaml:"generation"`
	Logging struct {
		Level *string `yaml:"level"`
		File  *string `yaml:"file"`
	} `yaml:"logging"`
}

// Default returns the configuration used when config.yaml is absent.
// Relative paths are resolved against .specgen/ by Load.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Driver: store.DriverSQLite,
			Path:   template.DBFile,
		},
		Autosave: AutosaveConfig{
			Delay: time.Second,
		},
		Generation: GenerationConfig{
			Provider:        "gemini",
			MaxOutputTokens: generator.DefaultMaxOutputTokens,
			Timeout:         generator.DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  template.LogFile,
		},
	}
}

// Validate checks that the Config fields are valid.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case store.DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must not be empty")
		}
	case store.DriverLibSQL, store.DriverPostgres:
		if c.Storage.URL == "" {
			return fmt.Errorf("storage.url is required for the %s driver (or set %s)", c.Storage.Driver, EnvDatabaseURL)
		}
	default:
		return fmt.Errorf("storage.driver must be one of sqlite, libsql, postgres (got %q)", c.Storage.Driver)
	}
	if c.Autosave.Delay <= 0 {
		return fmt.Errorf("autosave.delay must be greater than 0")
	}
	switch c.Generation.Provider {
	case "gemini", "claude":
	default:
		return fmt.Errorf("generation.provider must be gemini or claude (got %q)", c.Generation.Provider)
	}
	if c.Generation.MaxOutputTokens <= 0 || c.Generation.MaxOutputTokens > generator.MaxOutputTokensLimit {
		return fmt.Errorf("generation.maxOutputTokens must be between 1 and %d", generator.MaxOutputTokensLimit)
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("generation.timeout must be greater than 0")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}

// Load reads .specgen/config.yaml under dir, then applies .env and
// environment overrides. A missing config file yields the defaults.
func Load(dir string) (*Config, error) {
	// A missing .env is normal; existing environment variables win.
	_ = godotenv.Load(filepath.Join(dir, template.EnvFile))

	cfg := Default()
	specDir := filepath.Join(dir, template.SpecgenDir)

	data, err := os.ReadFile(filepath.Join(specDir, template.ConfigFile))
	switch {
	case err == nil:
		if err := merge(&cfg, data); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(&cfg)
	cfg.Storage.Path = resolve(specDir, cfg.Storage.Path)
	cfg.Logging.File = resolve(specDir, cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge applies explicitly set YAML keys over cfg.
func merge(cfg *Config, data []byte) error {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if raw.Storage.Driver != nil {
		cfg.Storage.Driver = *raw.Storage.Driver
	}
	if raw.Storage.Path != nil {
		cfg.Storage.Path = *raw.Storage.Path
	}
	if raw.Storage.URL != nil {
		cfg.Storage.URL = *raw.Storage.URL
	}
	if raw.Storage.AuthToken != nil {
		cfg.Storage.AuthToken = *raw.Storage.AuthToken
	}

	if raw.Autosave.Delay != nil {
		d, err := time.ParseDuration(*raw.Autosave.Delay)
		if err != nil {
			return fmt.Errorf("invalid autosave.delay %q: %w", *raw.Autosave.Delay, err)
		}
		cfg.Autosave.Delay = d
	}

	if raw.Generation.Provider != nil {
		cfg.Generation.Provider = *raw.Generation.Provider
	}
	if raw.Generation.Model != nil {
		cfg.Generation.Model = *raw.Generation.Model
	}
	if raw.Generation.MaxOutputTokens != nil {
		cfg.Generation.MaxOutputTokens = *raw.Generation.MaxOutputTokens
	}
	if raw.Generation.Timeout != nil {
		d, err := time.ParseDuration(*raw.Generation.Timeout)
		if err != nil {
			return fmt.Errorf("invalid generation.timeout %q: %w", *raw.Generation.Timeout, err)
		}
		cfg.Generation.Timeout = d
	}

	if raw.Logging.Level != nil {
		cfg.Logging.Level = *raw.Logging.Level
	}
	if raw.Logging.File != nil {
		cfg.Logging.File = *raw.Logging.File
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		cfg.Storage.URL = v
	}
	if v := os.Getenv(EnvDBAuthToken); v != "" {
		cfg.Storage.AuthToken = v
	}
	for _, key := range []string{EnvGeminiKey, EnvGoogleKey} {
		if v := os.Getenv(key); v != "" {
			cfg.Generation.APIKey = v
			break
		}
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// StoreConfig returns the store settings for store.Open.
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		Driver:    c.Storage.Driver,
		Path:      c.Storage.Path,
		URL:       c.Storage.URL,
		AuthToken: c.Storage.AuthToken,
	}
}

// ModelConfig returns the provider settings for generator.NewModel.
func (c *Config) ModelConfig() generator.ModelConfig {
	return generator.ModelConfig{
		Model:           c.Generation.Model,
		APIKey:          c.Generation.APIKey,
		MaxOutputTokens: c.Generation.MaxOutputTokens,
		Timeout:         c.Generation.Timeout,
	}
}
