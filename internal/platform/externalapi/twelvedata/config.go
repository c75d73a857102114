// Package twelvedata provides a client for the Twelve Data market data API.
package twelvedata

import (
	"os"
	"time"
)

// defaultTimeout is the HTTP request timeout for time_series calls.
const defaultTimeout = 10 * time.Second

// Config holds configuration for the Twelve Data API client.
type Config struct {
	TwelveDataAPIKey string        // API key for authentication
	BaseURL          string        // e.g. "https://api.twelvedata.com"
	Timeout          time.Duration // HTTP request timeout
}

// LoadConfig reads the Twelve Data configuration from environment variables.
func LoadConfig() Config {
	return Config{
		TwelveDataAPIKey: os.Getenv("TWELVE_DATA_API_KEY"),
		BaseURL:          os.Getenv("TWELVE_DATA_BASE_URL"),
		Timeout:          defaultTimeout,
	}
}
