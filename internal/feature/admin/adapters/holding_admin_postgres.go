package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"broker_backend/internal/feature/admin/usecase"
	tradingdomain "broker_backend/internal/feature/trading/domain"
	tradingentity "broker_backend/internal/feature/trading/domain/entity"
)

// overrideRetries bounds the retry loop against concurrent trades touching
// the same position while an override is in flight.
const overrideRetries = 3

// holdingAdminPostgres implements HoldingAdminRepository with the same
// version-stamped writes the trade executor uses, so overrides never clobber
// a concurrently committed trade.
type holdingAdminPostgres struct {
	db *gorm.DB
}

// Compile-time check that holdingAdminPostgres implements HoldingAdminRepository.
var _ usecase.HoldingAdminRepository = (*holdingAdminPostgres)(nil)

// NewHoldingAdminRepository creates a holdings override repository.
func NewHoldingAdminRepository(db *gorm.DB) *holdingAdminPostgres {
	return &holdingAdminPostgres{db: db}
}

// ApplyDelta adds delta shares to the position inside one transaction,
// creating the row when absent and deleting it when the remaining quantity
// is exactly zero. Lost version races are retried a bounded number of times.
func (r *holdingAdminPostgres) ApplyDelta(ctx context.Context, username, stockName string, delta int64) error {
	var err error
	for range overrideRetries {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return applyDelta(tx, username, stockName, delta)
		})
		if !errors.Is(err, tradingdomain.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}

func applyDelta(tx *gorm.DB, username, stockName string, delta int64) error {
	var row tradingentity.Holding
	err := tx.Where("username = ? AND stock_name = ?", username, stockName).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if delta < 0 {
			return usecase.ErrNegativeResult
		}
		// An override-created row has no acquisition price to record.
		createErr := tx.Create(&tradingentity.Holding{
			Username:     username,
			StockName:    stockName,
			Quantity:     delta,
			PurchaseDate: time.Now(),
		}).Error
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return tradingdomain.ErrConcurrencyConflict
		}
		return createErr
	case err != nil:
		return err
	}

	remaining := row.Quantity + delta
	if remaining < 0 {
		return usecase.ErrNegativeResult
	}

	var res *gorm.DB
	if remaining == 0 {
		res = tx.Where("username = ? AND stock_name = ? AND version = ?", username, stockName, row.Version).
			Delete(&tradingentity.Holding{})
	} else {
		res = tx.Model(&tradingentity.Holding{}).
			Where("username = ? AND stock_name = ? AND version = ?", username, stockName, row.Version).
			Updates(map[string]interface{}{
				"quantity": remaining,
				"version":  row.Version + 1,
			})
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tradingdomain.ErrConcurrencyConflict
	}
	return nil
}
