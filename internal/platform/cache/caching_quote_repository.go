// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/feature/quotes/usecase"
)

// CachingQuoteRepository decorates a QuoteRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads the trade path performs go
// through this as well: serving a quote that is stale by one refresh cycle
// is an accepted trade-off.
type CachingQuoteRepository struct {
	inner     usecase.QuoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingQuoteRepository implements QuoteRepository.
var _ usecase.QuoteRepository = (*CachingQuoteRepository)(nil)

// NewCachingQuoteRepository decorates a QuoteRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "quotes". A nil Redis client bypasses the cache entirely.
func NewCachingQuoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteRepository, namespace string) *CachingQuoteRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch stores quotes and invalidates the affected cache entries.
func (c *CachingQuoteRepository) UpsertBatch(ctx context.Context, quotes []entity.Quote) error {
	if err := c.inner.UpsertBatch(ctx, quotes); err != nil {
		return err
	}
	if c.rdb == nil || len(quotes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(quotes)+1)
	keys = append(keys, c.listKey())
	for _, q := range quotes {
		keys = append(keys, c.idKey(q.ID))
	}
	_ = c.rdb.Del(ctx, keys...).Err() // Best effort: a failed invalidation only shortens freshness
	return nil
}

// FindByID retrieves one quote, checking the cache first then falling back
// to the database. Misses are not cached, so an unknown id stays an error.
func (c *CachingQuoteRepository) FindByID(ctx context.Context, id uint) (*entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// List retrieves every quote, cached under one list key.
func (c *CachingQuoteRepository) List(ctx context.Context) ([]entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingQuoteRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func (c *CachingQuoteRepository) listKey() string {
	return c.namespace + ":list"
}
