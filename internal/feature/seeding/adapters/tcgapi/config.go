// Package tcgapi provides a client for the external card data API.
package tcgapi

import (
	"os"
	"time"
)

// Config holds configuration for the card data API client.
type Config struct {
	APIKey  string        // API key sent via the X-Api-Key header (optional but rate limits are tighter without one)
	BaseURL string        // Base URL for the API (e.g., "https://api.pokemontcg.io/v2")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads card API configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:  os.Getenv("CARD_API_KEY"),
		BaseURL: os.Getenv("CARD_API_BASE_URL"),
		Timeout: 30 * time.Second,
	}
}
