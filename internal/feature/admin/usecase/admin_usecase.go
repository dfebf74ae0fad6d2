// Package usecase implements the privileged administration operations:
// account management, balance overrides and holding overrides.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	tradingdomain "broker_backend/internal/feature/trading/domain"
	tradingusecase "broker_backend/internal/feature/trading/usecase"
)

// ErrUserNotFound is returned when the target username has no account.
var ErrUserNotFound = errors.New("user not found")

// ErrNegativeResult is returned when an override would drive a balance or
// holding quantity below zero.
var ErrNegativeResult = errors.New("override would produce a negative value")

// balanceRetries bounds the version-stamp retry loop of balance overrides.
// Unlike trades, overrides retry internally because the operator has no
// stale snapshot to protect; the delta semantics stay correct across retries.
const balanceRetries = 3

// UserSummary is one row of the admin user listing.
type UserSummary struct {
	ID       uint
	Username string
	Role     string
}

// HoldingSummary is one position row in the user details view.
type HoldingSummary struct {
	StockName    string
	Quantity     int64
	PurchaseDate time.Time
}

// UserDetails is the admin view of one account.
type UserDetails struct {
	Username string
	Balance  decimal.Decimal
	Holdings []HoldingSummary
}

// UserAdminRepository is the account management surface of the user store.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserAdminRepository interface {
	// List returns every registered user.
	List(ctx context.Context) ([]UserSummary, error)

	// Create registers a user with an already-hashed password.
	Create(ctx context.Context, username, passwordHash, role string) error

	// Delete removes the user, or returns ErrUserNotFound.
	Delete(ctx context.Context, username string) error

	// Balance returns the user's cash balance, or ErrUserNotFound.
	Balance(ctx context.Context, username string) (decimal.Decimal, error)
}

// HoldingAdminRepository is the override surface over holdings.
type HoldingAdminRepository interface {
	// ApplyDelta adds delta shares to the (username, stockName) position,
	// creating the row when absent and deleting it when the result is
	// exactly zero. The recorded purchase price of an existing row is left
	// untouched. Returns ErrNegativeResult when the result would go below
	// zero.
	ApplyDelta(ctx context.Context, username, stockName string, delta int64) error
}

// adminUsecase implements the administration business logic. Balance
// overrides run through the trading store's atomic unit so they serialize
// correctly against concurrent trades on the same account row.
type adminUsecase struct {
	users     UserAdminRepository
	store     tradingusecase.TradeStore
	holdings  tradingusecase.TradeQueries
	overrides HoldingAdminRepository
}

// NewAdminUsecase creates a new adminUsecase instance.
func NewAdminUsecase(users UserAdminRepository, store tradingusecase.TradeStore,
	holdings tradingusecase.TradeQueries, overrides HoldingAdminRepository) *adminUsecase {
	return &adminUsecase{users: users, store: store, holdings: holdings, overrides: overrides}
}

// ListUsers returns every registered user.
func (a *adminUsecase) ListUsers(ctx context.Context) ([]UserSummary, error) {
	return a.users.List(ctx)
}

// CreateUser registers a user on behalf of an operator.
func (a *adminUsecase) CreateUser(ctx context.Context, username, password, role string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if role == "" {
		role = "user"
	}
	return a.users.Create(ctx, username, string(hashed), role)
}

// DeleteUser removes a user account.
func (a *adminUsecase) DeleteUser(ctx context.Context, username string) error {
	return a.users.Delete(ctx, username)
}

// UserDetails returns the account's balance and current positions.
func (a *adminUsecase) UserDetails(ctx context.Context, username string) (*UserDetails, error) {
	balance, err := a.users.Balance(ctx, username)
	if err != nil {
		return nil, err
	}

	positions, err := a.holdings.ListHoldings(ctx, username)
	if err != nil {
		return nil, err
	}

	details := &UserDetails{Username: username, Balance: balance, Holdings: make([]HoldingSummary, 0, len(positions))}
	for _, p := range positions {
		details.Holdings = append(details.Holdings, HoldingSummary{
			StockName:    p.StockName,
			Quantity:     p.Quantity,
			PurchaseDate: p.PurchaseDate,
		})
	}
	return details, nil
}

// AdjustBalance applies a signed delta to the user's cash balance. This is
// the administrative override path; it still refuses a negative result.
func (a *adminUsecase) AdjustBalance(ctx context.Context, username string, delta decimal.Decimal) error {
	var err error
	for range balanceRetries {
		err = a.store.Execute(ctx, func(tx tradingusecase.TradeTx) error {
			acct, err := tx.Account(username)
			if err != nil {
				if errors.Is(err, tradingdomain.ErrAccountNotFound) {
					return ErrUserNotFound
				}
				return err
			}
			newBalance := acct.Balance.Add(delta)
			if newBalance.IsNegative() {
				return ErrNegativeResult
			}
			return tx.UpdateBalance(username, newBalance, acct.Version)
		})
		if !errors.Is(err, tradingdomain.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}

// OverrideHolding applies a signed quantity delta to a (user, stock) position.
func (a *adminUsecase) OverrideHolding(ctx context.Context, username, stockName string, delta int64) error {
	if delta == 0 {
		return nil
	}
	return a.overrides.ApplyDelta(ctx, username, stockName, delta)
}
