package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int      `env:"PORT" envDefault:"8080"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`
	Environment    string   `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName    string   `env:"SERVICE_NAME" envDefault:"homestead"`
	Version        string   `env:"VERSION" envDefault:"dev"`
	APIKey         string   `env:"API_KEY"` // optional; enables API key auth when set
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Game settings handed to every new session
	PlotCount     int `env:"PLOT_COUNT" envDefault:"9"`
	StartingCoins int `env:"STARTING_COINS" envDefault:"100"`

	// Extra crop names, e.g. "mielie:maize,kovo:rape"
	CropAliases map[string]string `env:"CROP_ALIASES" envSeparator:"," envKeyValSeparator:":"`

	// In-memory session store
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1024"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	Advisor AdvisorConfig `envPrefix:"ADVISOR_"`
}

// AdvisorConfig configures the chat advisor backend
type AdvisorConfig struct {
	APIKey  string        `env:"API_KEY"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.openai.com/v1/"`
	Model   string        `env:"MODEL" envDefault:"gpt-4o-mini"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AdvisorEnabled reports whether a backend key is configured for the advisor
func (c *Config) AdvisorEnabled() bool {
	return c.Advisor.APIKey != ""
}
