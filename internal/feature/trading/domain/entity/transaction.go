package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type values.
const (
	TypeBuy  = "BUY"
	TypeSell = "SELL"
)

// Transaction is one immutable ledger entry describing an executed trade.
// Rows are append-only: they are written exactly once per committed trade
// and never updated or deleted afterwards.
type Transaction struct {
	// ID is assigned by the storage layer on append.
	ID uint `gorm:"primaryKey"`

	// Username identifies the trading account.
	Username string `gorm:"size:255;not null;index"`

	// StockName is the security's display name at execution time. It is a
	// historical snapshot and stays valid after the holding is deleted.
	StockName string `gorm:"size:255;not null"`

	// TransactionType is TypeBuy or TypeSell.
	TransactionType string `gorm:"size:8;not null"`

	// Quantity is the executed share count, always positive.
	Quantity int64 `gorm:"not null"`

	// Price is the unit price at execution time.
	Price decimal.Decimal `gorm:"type:decimal(20,6);not null"`

	// TransactionDate is set by the storage layer at append time.
	TransactionDate time.Time `gorm:"not null;index"`
}

// TableName maps the entity onto the transactions table.
func (Transaction) TableName() string {
	return "transactions"
}
