package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	quotesadapters "broker_backend/internal/feature/quotes/adapters"
	quotesusecase "broker_backend/internal/feature/quotes/usecase"
	"broker_backend/internal/platform/cache"
)

// quoteCacheTTL bounds how stale a cached quote may get between scrapes.
const quoteCacheTTL = 5 * time.Minute

// NewQuoteRepository creates the quote repository, wrapped in a Redis cache
// when a client is available. rdb may be nil to run without caching.
func NewQuoteRepository(db *gorm.DB, rdb *redis.Client) quotesusecase.QuoteRepository {
	repo := quotesadapters.NewQuoteRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingQuoteRepository(rdb, quoteCacheTTL, repo, "quotes")
}
