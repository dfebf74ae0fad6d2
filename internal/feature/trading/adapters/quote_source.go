package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	quotesdomain "broker_backend/internal/feature/quotes/domain"
	quotesentity "broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/feature/trading/domain"
	"broker_backend/internal/feature/trading/usecase"
)

// QuoteFinder is the narrow slice of the quote store the trade path needs.
// Satisfied by the quotes feature repository, cached or not.
type QuoteFinder interface {
	FindByID(ctx context.Context, id uint) (*quotesentity.Quote, error)
}

// quoteSource adapts the quote store into the executor's QuoteReader: one
// snapshot read resolving both the display name and the parsed price, with
// quote-store errors translated into the trading domain.
type quoteSource struct {
	quotes QuoteFinder
}

// Compile-time check that quoteSource implements QuoteReader.
var _ usecase.QuoteReader = (*quoteSource)(nil)

// NewQuoteSource creates a QuoteReader over the given quote store.
func NewQuoteSource(quotes QuoteFinder) *quoteSource {
	return &quoteSource{quotes: quotes}
}

// GetCurrent returns the security's name and price from a single quote row.
// A row whose stored price text does not parse is surfaced as
// domain.ErrInvalidQuote rather than defaulting to zero.
func (q *quoteSource) GetCurrent(ctx context.Context, stockID uint) (string, decimal.Decimal, error) {
	row, err := q.quotes.FindByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, quotesdomain.ErrQuoteNotFound) {
			return "", decimal.Decimal{}, domain.ErrQuoteNotFound
		}
		return "", decimal.Decimal{}, err
	}

	price, err := quotesdomain.ParsePrice(row.PriceText)
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("%w: stock %d: %v", domain.ErrInvalidQuote, stockID, err)
	}
	return row.Name, price, nil
}
