package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"broker_backend/internal/feature/quotes/domain"
	"broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/shared/ratelimiter"
)

// FeedScraper fetches the current quote table from the external feed.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type FeedScraper interface {
	Fetch(ctx context.Context) ([]entity.Quote, error)
}

// ScrapeUsecase refreshes the local quote store from the external feed.
type ScrapeUsecase struct {
	feed        FeedScraper
	quotes      QuoteRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewScrapeUsecase creates a new ScrapeUsecase.
func NewScrapeUsecase(feed FeedScraper, quotes QuoteRepository, rateLimiter ratelimiter.RateLimiterInterface) *ScrapeUsecase {
	return &ScrapeUsecase{feed: feed, quotes: quotes, rateLimiter: rateLimiter}
}

// RefreshAll scrapes the feed once and upserts every row that passes price
// validation. Rows with unparsable price text are skipped and logged instead
// of being stored; malformed prices must be rejected at ingestion, not
// discovered deep inside the trade path. Returns the number of stored rows.
func (su *ScrapeUsecase) RefreshAll(ctx context.Context) (int, error) {
	su.rateLimiter.WaitIfNeeded()

	scraped, err := su.feed.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}

	now := time.Now()
	valid := make([]entity.Quote, 0, len(scraped))
	for _, q := range scraped {
		if _, err := domain.ParsePrice(q.PriceText); err != nil {
			slog.Warn("skipping quote with unparsable price",
				"id", q.ID, "name", q.Name, "price_text", q.PriceText, "error", err)
			continue
		}
		q.ScrapedAt = now
		valid = append(valid, q)
	}

	if err := su.quotes.UpsertBatch(ctx, valid); err != nil {
		return 0, fmt.Errorf("store quotes: %w", err)
	}
	return len(valid), nil
}
