// Package adapters provides repository implementations for the quotes feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"broker_backend/internal/feature/quotes/domain"
	"broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/feature/quotes/usecase"
)

// quotePostgres is the GORM implementation of the QuoteRepository interface.
type quotePostgres struct {
	db *gorm.DB
}

// Compile-time check that quotePostgres implements QuoteRepository.
var _ usecase.QuoteRepository = (*quotePostgres)(nil)

// NewQuoteRepository creates a quote repository on the given gorm.DB.
func NewQuoteRepository(db *gorm.DB) *quotePostgres {
	return &quotePostgres{db: db}
}

// UpsertBatch inserts new quote rows and refreshes existing ones in place.
func (r *quotePostgres) UpsertBatch(ctx context.Context, quotes []entity.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "price_text", "high", "low", "change", "volume", "scraped_at",
		}),
	}).Create(&quotes).Error
}

// FindByID returns the quote with the given security id.
// Returns domain.ErrQuoteNotFound when the id is unknown.
func (r *quotePostgres) FindByID(ctx context.Context, id uint) (*entity.Quote, error) {
	var q entity.Quote
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, err
	}
	return &q, nil
}

// List returns every quote ordered by security id.
func (r *quotePostgres) List(ctx context.Context) ([]entity.Quote, error) {
	var rows []entity.Quote
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
