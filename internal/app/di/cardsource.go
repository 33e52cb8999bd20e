// Package di provides dependency injection factories for creating application components.
package di

import (
	"card_backend/internal/feature/seeding/adapters/tcgapi"
	platformhttp "card_backend/internal/platform/http"
)

// NewCardAPISource creates a fully configured card API client with HTTP client.
func NewCardAPISource() *tcgapi.Client {
	cfg := tcgapi.LoadConfig()
	httpClient := platformhttp.NewHTTPClient(cfg.Timeout)
	return tcgapi.NewClient(cfg, httpClient)
}
