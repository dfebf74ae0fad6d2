// Package entity defines the domain entities for the trading feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding represents one user's position in one security.
// A holding only exists while its quantity is positive; rows that reach
// quantity zero are deleted rather than retained.
type Holding struct {
	// ID is the surrogate primary key of the holding row.
	ID uint `gorm:"primaryKey"`

	// Username identifies the owning account.
	Username string `gorm:"size:255;not null;uniqueIndex:holding_user_stock,priority:1"`

	// StockName is the display name of the held security.
	StockName string `gorm:"size:255;not null;uniqueIndex:holding_user_stock,priority:2"`

	// Quantity is the number of shares held. It is never negative.
	Quantity int64 `gorm:"not null"`

	// PurchasePrice is the unit price recorded at the most recent buy.
	// Repeated buys overwrite it; it is not a weighted average.
	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,6);not null"`

	// PurchaseDate is the timestamp of the most recent buy.
	PurchaseDate time.Time `gorm:"not null"`

	// Version is the optimistic concurrency stamp. Every mutation of the
	// row must carry the version it read and bumps it by one.
	Version uint `gorm:"not null;default:0"`
}

// TableName maps the entity onto the user_stocks table.
func (Holding) TableName() string {
	return "user_stocks"
}
