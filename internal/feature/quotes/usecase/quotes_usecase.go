// Package usecase implements the business logic of the quotes feature.
package usecase

import (
	"context"

	"broker_backend/internal/feature/quotes/domain/entity"
)

// QuoteRepository abstracts the persistence layer for quotes.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type QuoteRepository interface {
	// UpsertBatch inserts or refreshes quote rows keyed by security id.
	UpsertBatch(ctx context.Context, quotes []entity.Quote) error

	// FindByID returns one quote, or domain.ErrQuoteNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Quote, error)

	// List returns every known quote ordered by id.
	List(ctx context.Context) ([]entity.Quote, error)
}

// quotesUsecase serves read access to the quote store.
type quotesUsecase struct {
	quotes QuoteRepository
}

// NewQuotesUsecase creates a new quotesUsecase instance.
func NewQuotesUsecase(quotes QuoteRepository) *quotesUsecase {
	return &quotesUsecase{quotes: quotes}
}

// ListQuotes returns every quote currently in the store.
func (qu *quotesUsecase) ListQuotes(ctx context.Context) ([]entity.Quote, error) {
	return qu.quotes.List(ctx)
}

// GetQuote returns the quote for one security id.
func (qu *quotesUsecase) GetQuote(ctx context.Context, id uint) (*entity.Quote, error) {
	return qu.quotes.FindByID(ctx, id)
}
