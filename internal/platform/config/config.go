package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the production API; overridable via ENOUGHFI_API_BASE_URL.
const DefaultBaseURL = "https://enoughfi-api.onrender.com/api"

// Config holds client configuration.
type Config struct {
	BaseURL      string
	TokenFile    string
	HTTPTimeout  time.Duration
	RetryDelay   time.Duration
	IsProduction bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every field has a usable default; LoadConfig never fails on
// missing values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("ENOUGHFI_API_BASE_URL", DefaultBaseURL)
	viper.SetDefault("ENOUGHFI_TOKEN_FILE", defaultTokenFile())
	viper.SetDefault("HTTP_TIMEOUT", "90s")
	viper.SetDefault("RETRY_DELAY", "2s")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{
		BaseURL:      viper.GetString("ENOUGHFI_API_BASE_URL"),
		TokenFile:    viper.GetString("ENOUGHFI_TOKEN_FILE"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
	}

	// The backend can take tens of seconds to answer while cold starting, so
	// the per-request timeout is deliberately generous.
	timeout, err := time.ParseDuration(viper.GetString("HTTP_TIMEOUT"))
	if err != nil {
		timeout = 90 * time.Second
	}
	cfg.HTTPTimeout = timeout

	retryDelay, err := time.ParseDuration(viper.GetString("RETRY_DELAY"))
	if err != nil {
		retryDelay = 2 * time.Second
	}
	cfg.RetryDelay = retryDelay

	return cfg, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".enoughfi_token"
	}
	return filepath.Join(home, ".enoughfi", "token")
}
