// Package adapters provides storage implementations for the trading feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"broker_backend/internal/feature/trading/domain"
	"broker_backend/internal/feature/trading/domain/entity"
	"broker_backend/internal/feature/trading/usecase"
)

// accountModel is the trading feature's view of the users table. Only the
// balance columns are mapped; identity fields belong to the auth feature.
type accountModel struct {
	ID             uint
	Username       string
	Balance        decimal.Decimal `gorm:"type:decimal(20,6)"`
	BalanceVersion uint
}

func (accountModel) TableName() string {
	return "users"
}

// tradeStore is the GORM implementation of TradeStore and TradeQueries.
// Writes use optimistic version stamps: every UPDATE and DELETE is
// conditioned on the version the executor read, so a concurrent mutation of
// the same row makes the statement match zero rows and the unit aborts with
// domain.ErrConcurrencyConflict before anything commits.
type tradeStore struct {
	db *gorm.DB
}

// Compile-time checks that tradeStore implements the usecase contracts.
var (
	_ usecase.TradeStore   = (*tradeStore)(nil)
	_ usecase.TradeQueries = (*tradeStore)(nil)
)

// NewTradeStore creates a trade store on the given gorm.DB.
func NewTradeStore(db *gorm.DB) *tradeStore {
	return &tradeStore{db: db}
}

// Execute runs fn inside one database transaction. The transaction handle is
// scoped to this call and released on every exit path; an error from fn rolls
// the whole unit back.
func (s *tradeStore) Execute(ctx context.Context, fn func(tx usecase.TradeTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&tradeTx{db: tx})
	})
}

// tradeTx implements usecase.TradeTx on one open transaction.
type tradeTx struct {
	db *gorm.DB
}

// Account returns the version-stamped balance snapshot for the user.
func (t *tradeTx) Account(username string) (usecase.Account, error) {
	var row accountModel
	if err := t.db.Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.Account{}, domain.ErrAccountNotFound
		}
		return usecase.Account{}, err
	}
	return usecase.Account{Balance: row.Balance, Version: row.BalanceVersion}, nil
}

// UpdateBalance commits the recomputed balance if the row is still at the
// version the executor read. A negative balance is refused outright; the
// executor validates funds first, so hitting this means a bug upstream.
func (t *tradeTx) UpdateBalance(username string, newBalance decimal.Decimal, expectedVersion uint) error {
	if newBalance.IsNegative() {
		return domain.ErrInsufficientFunds
	}
	res := t.db.Model(&accountModel{}).
		Where("username = ? AND balance_version = ?", username, expectedVersion).
		Updates(map[string]interface{}{
			"balance":         newBalance,
			"balance_version": expectedVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConcurrencyConflict
	}
	return nil
}

// Holding returns the version-stamped position snapshot. A missing row is
// reported as a non-existent position, not an error.
func (t *tradeTx) Holding(username, stockName string) (usecase.HoldingPosition, error) {
	var row entity.Holding
	err := t.db.Where("username = ? AND stock_name = ?", username, stockName).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.HoldingPosition{}, nil
		}
		return usecase.HoldingPosition{}, err
	}
	return usecase.HoldingPosition{Quantity: row.Quantity, Version: row.Version, Exists: true}, nil
}

// UpsertOnBuy creates the position on first buy, or adds to it and
// overwrites the recorded purchase price on repeat buys.
func (t *tradeTx) UpsertOnBuy(username, stockName string, quantity int64, unitPrice decimal.Decimal, prev usecase.HoldingPosition) error {
	if !prev.Exists {
		err := t.db.Create(&entity.Holding{
			Username:      username,
			StockName:     stockName,
			Quantity:      quantity,
			PurchasePrice: unitPrice,
			PurchaseDate:  time.Now(),
		}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Someone else created the row after our snapshot read.
			return domain.ErrConcurrencyConflict
		}
		return err
	}

	res := t.db.Model(&entity.Holding{}).
		Where("username = ? AND stock_name = ? AND version = ?", username, stockName, prev.Version).
		Updates(map[string]interface{}{
			"quantity":       prev.Quantity + quantity,
			"purchase_price": unitPrice,
			"purchase_date":  time.Now(),
			"version":        prev.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConcurrencyConflict
	}
	return nil
}

// DecrementOnSell subtracts the sold quantity. The deletion predicate is the
// remaining quantity reaching exactly zero, not the sold amount matching the
// held amount, so a zero row can never be left behind.
func (t *tradeTx) DecrementOnSell(username, stockName string, quantity int64, prev usecase.HoldingPosition) error {
	remaining := prev.Quantity - quantity
	if remaining < 0 {
		// The executor validates quantity first; refuse rather than commit
		// a negative position.
		return domain.ErrInsufficientHoldings
	}

	var res *gorm.DB
	if remaining == 0 {
		res = t.db.
			Where("username = ? AND stock_name = ? AND version = ?", username, stockName, prev.Version).
			Delete(&entity.Holding{})
	} else {
		res = t.db.Model(&entity.Holding{}).
			Where("username = ? AND stock_name = ? AND version = ?", username, stockName, prev.Version).
			Updates(map[string]interface{}{
				"quantity": remaining,
				"version":  prev.Version + 1,
			})
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConcurrencyConflict
	}
	return nil
}

// AppendTransaction writes one immutable trade record, stamping the
// transaction date at write time.
func (t *tradeTx) AppendTransaction(record *entity.Transaction) error {
	if record.TransactionDate.IsZero() {
		record.TransactionDate = time.Now()
	}
	return t.db.Create(record).Error
}

// ListHoldings returns the user's positions ordered by stock name.
func (s *tradeStore) ListHoldings(ctx context.Context, username string) ([]entity.Holding, error) {
	rows := make([]entity.Holding, 0)
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Order("stock_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTransactions returns the whole log, newest first.
func (s *tradeStore) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	rows := make([]entity.Transaction, 0)
	err := s.db.WithContext(ctx).
		Order("transaction_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTransactionsByUsername returns one user's trades, newest first.
func (s *tradeStore) ListTransactionsByUsername(ctx context.Context, username string) ([]entity.Transaction, error) {
	rows := make([]entity.Transaction, 0)
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Order("transaction_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTransactionsByDate returns the trades of the calendar day containing day.
func (s *tradeStore) ListTransactionsByDate(ctx context.Context, day time.Time) ([]entity.Transaction, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows := make([]entity.Transaction, 0)
	err := s.db.WithContext(ctx).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Order("transaction_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
