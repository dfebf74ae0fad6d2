// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"broker_backend/internal/feature/quotes/adapters/investing"
	quotesusecase "broker_backend/internal/feature/quotes/usecase"
	infrahttp "broker_backend/internal/platform/http"
	"broker_backend/internal/shared/ratelimiter"
)

// NewScrapeUsecase creates a fully configured scraper over the given quote
// repository. The feed host throttles aggressive clients, so scrapes are
// rate limited to a handful per minute.
func NewScrapeUsecase(quotes quotesusecase.QuoteRepository) *quotesusecase.ScrapeUsecase {
	cfg := investing.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	feed := investing.NewScraper(cfg, httpClient)
	limiter := ratelimiter.NewRateLimiter(5, time.Minute)
	return quotesusecase.NewScrapeUsecase(feed, quotes, limiter)
}
