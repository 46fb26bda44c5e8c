// Package fmp provides a client for the Financial Modeling Prep stock data API.
package fmp

import (
	"os"
	"time"
)

// DefaultBaseURL is the production endpoint of the Financial Modeling Prep v3 API.
const DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

// Config holds configuration for the Financial Modeling Prep API client.
type Config struct {
	APIKey  string        // API key appended to every request
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Financial Modeling Prep configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("FMP_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FMP_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
