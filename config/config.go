package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Firecrawl FirecrawlConfig
	Fetcher   FetcherConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FirecrawlConfig holds configuration for the content-fetching collaborator.
// An empty API key is a valid configuration: the structured-extraction stage
// is skipped and every request goes straight to the direct-fetch fallback.
type FirecrawlConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	WaitFor int           `mapstructure:"wait_for"` // ms to let client-side rendering settle
	Timeout time.Duration `mapstructure:"timeout"`
}

// FetcherConfig holds configuration for the direct page fetcher
type FetcherConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hilinkr/")

	// Environment variable settings
	v.SetEnvPrefix("HILINKR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Firecrawl defaults. The timeout leaves headroom over wait_for so the
	// client does not give up while Firecrawl is still rendering.
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev")
	v.SetDefault("firecrawl.wait_for", 3000)
	v.SetDefault("firecrawl.timeout", "30s")

	// Direct fetcher defaults
	v.SetDefault("fetcher.timeout", "15s")
	v.SetDefault("fetcher.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Firecrawl.Timeout <= 0 {
		return fmt.Errorf("firecrawl timeout must be positive, got: %s", config.Firecrawl.Timeout)
	}

	if config.Firecrawl.WaitFor < 0 {
		return fmt.Errorf("firecrawl wait_for must not be negative, got: %d", config.Firecrawl.WaitFor)
	}

	if config.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetcher timeout must be positive, got: %s", config.Fetcher.Timeout)
	}

	if len(config.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}

	return nil
}
