// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/MeckMan2025/Meckman-Finance/internal/platform/externalapi/fmp"
	infrahttp "github.com/MeckMan2025/Meckman-Finance/internal/platform/http"
)

// NewMarket creates a fully configured FMP client with HTTP client.
func NewMarket() *fmp.Client {
	cfg := fmp.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return fmp.New(cfg, httpClient)
}
