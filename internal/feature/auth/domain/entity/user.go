// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account in the system.
// Besides credentials it carries the account's cash balance; the trading
// feature mutates the balance columns only through its own versioned store,
// never through this entity.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique login and account identifier. Holdings and
	// transaction records reference the account by username.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email receives portfolio reports. May be empty.
	Email string `gorm:"size:255"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is RoleUser or RoleAdmin.
	Role string `gorm:"size:32;not null;default:user"`

	// Balance is the account's cash balance. Trades never commit a
	// negative balance; administrative overrides are the only path that
	// may set it arbitrarily.
	Balance decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0"`

	// BalanceVersion is the optimistic concurrency stamp for Balance.
	BalanceVersion uint `gorm:"not null;default:0"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
