package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quotesdomain "broker_backend/internal/feature/quotes/domain"
	quotesentity "broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/feature/trading/domain"
)

// mockQuoteFinder is a mock implementation of the QuoteFinder interface.
type mockQuoteFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*quotesentity.Quote, error)
}

func (m *mockQuoteFinder) FindByID(ctx context.Context, id uint) (*quotesentity.Quote, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, quotesdomain.ErrQuoteNotFound
}

func TestQuoteSource_GetCurrent(t *testing.T) {
	t.Parallel()

	t.Run("returns name and parsed price from one row", func(t *testing.T) {
		src := NewQuoteSource(&mockQuoteFinder{
			FindByIDFunc: func(ctx context.Context, id uint) (*quotesentity.Quote, error) {
				return &quotesentity.Quote{ID: id, Name: "ACME", PriceText: "1.234,56"}, nil
			},
		})

		name, price, err := src.GetCurrent(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "ACME", name)
		assert.True(t, price.Equal(decimal.RequireFromString("1234.56")), "got %s", price)
	})

	t.Run("missing quote maps to the trading domain error", func(t *testing.T) {
		src := NewQuoteSource(&mockQuoteFinder{})

		_, _, err := src.GetCurrent(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})

	t.Run("unparsable stored price surfaces as ErrInvalidQuote", func(t *testing.T) {
		src := NewQuoteSource(&mockQuoteFinder{
			FindByIDFunc: func(ctx context.Context, id uint) (*quotesentity.Quote, error) {
				return &quotesentity.Quote{ID: id, Name: "ACME", PriceText: "n/a"}, nil
			},
		})

		_, _, err := src.GetCurrent(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrInvalidQuote)
	})

	t.Run("storage errors pass through untranslated", func(t *testing.T) {
		boom := errors.New("connection reset")
		src := NewQuoteSource(&mockQuoteFinder{
			FindByIDFunc: func(ctx context.Context, id uint) (*quotesentity.Quote, error) {
				return nil, boom
			},
		})

		_, _, err := src.GetCurrent(context.Background(), 7)
		assert.ErrorIs(t, err, boom)
	})
}
