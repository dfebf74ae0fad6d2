// Package usecase implements the trade execution core: order validation,
// balance and holding mutation, and transaction recording, all inside one
// atomic storage unit per order.
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"broker_backend/internal/feature/trading/domain"
	"broker_backend/internal/feature/trading/domain/entity"
)

// QuoteReader resolves a security's current display name and price in one
// snapshot read. The price has no freshness guarantee; a quote stale by one
// refresh cycle is an accepted trade-off, so no locking is coordinated with
// the scraper.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type QuoteReader interface {
	// GetCurrent returns the security's name and parsed price.
	// Errors: domain.ErrQuoteNotFound, domain.ErrInvalidQuote.
	GetCurrent(ctx context.Context, stockID uint) (string, decimal.Decimal, error)
}

// Account is a version-stamped snapshot of one account's cash balance.
type Account struct {
	Balance decimal.Decimal
	Version uint
}

// HoldingPosition is a version-stamped snapshot of one holding row.
// A missing row reads as {Exists: false, Quantity: 0}, which is not an error.
type HoldingPosition struct {
	Quantity int64
	Version  uint
	Exists   bool
}

// TradeTx is the set of reads and writes available inside one atomic unit.
// Every write carries the version stamp of the snapshot it was computed
// from; a stale stamp fails the write with domain.ErrConcurrencyConflict
// and thereby aborts the whole unit.
type TradeTx interface {
	// Account returns the balance snapshot for the user.
	// Errors: domain.ErrAccountNotFound.
	Account(username string) (Account, error)

	// UpdateBalance replaces the balance if the version still matches.
	UpdateBalance(username string, newBalance decimal.Decimal, expectedVersion uint) error

	// Holding returns the position snapshot for (user, stock).
	Holding(username, stockName string) (HoldingPosition, error)

	// UpsertOnBuy adds quantity to the position and overwrites the
	// purchase price with the execution price.
	UpsertOnBuy(username, stockName string, quantity int64, unitPrice decimal.Decimal, prev HoldingPosition) error

	// DecrementOnSell subtracts quantity from the position and deletes the
	// row when the remaining quantity is exactly zero.
	DecrementOnSell(username, stockName string, quantity int64, prev HoldingPosition) error

	// AppendTransaction writes one immutable trade record.
	AppendTransaction(record *entity.Transaction) error
}

// TradeStore runs a function inside one storage transaction. If fn returns
// an error the whole unit is rolled back and the error is passed through;
// no partial mutation is ever observable.
type TradeStore interface {
	Execute(ctx context.Context, fn func(tx TradeTx) error) error
}

// TradeQueries is the read-only surface over holdings and the transaction log.
type TradeQueries interface {
	// ListHoldings returns the user's positions, empty slice when none.
	ListHoldings(ctx context.Context, username string) ([]entity.Holding, error)

	// ListTransactions returns every recorded trade, newest first.
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)

	// ListTransactionsByUsername returns the user's trades, newest first,
	// empty slice when none.
	ListTransactionsByUsername(ctx context.Context, username string) ([]entity.Transaction, error)

	// ListTransactionsByDate returns the trades of one calendar day.
	ListTransactionsByDate(ctx context.Context, day time.Time) ([]entity.Transaction, error)
}

// tradeUsecase is the trade executor.
type tradeUsecase struct {
	store   TradeStore
	queries TradeQueries
	quotes  QuoteReader
}

// NewTradeUsecase creates a new tradeUsecase instance.
func NewTradeUsecase(store TradeStore, queries TradeQueries, quotes QuoteReader) *tradeUsecase {
	return &tradeUsecase{store: store, queries: queries, quotes: quotes}
}

// Buy executes a buy order for quantity shares of stockID.
//
// Inside one atomic unit: read the balance, take one quote snapshot, verify
// funds, debit the balance, upsert the holding (overwriting the recorded
// purchase price with the execution price) and append a BUY record. Any
// failure aborts the unit with nothing committed.
func (t *tradeUsecase) Buy(ctx context.Context, username string, stockID uint, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	return t.store.Execute(ctx, func(tx TradeTx) error {
		acct, err := tx.Account(username)
		if err != nil {
			return err
		}

		name, price, err := t.quotes.GetCurrent(ctx, stockID)
		if err != nil {
			return err
		}

		totalCost := price.Mul(decimal.NewFromInt(quantity))
		if acct.Balance.LessThan(totalCost) {
			return domain.ErrInsufficientFunds
		}

		if err := tx.UpdateBalance(username, acct.Balance.Sub(totalCost), acct.Version); err != nil {
			return err
		}

		prev, err := tx.Holding(username, name)
		if err != nil {
			return err
		}
		if err := tx.UpsertOnBuy(username, name, quantity, price, prev); err != nil {
			return err
		}

		return tx.AppendTransaction(&entity.Transaction{
			Username:        username,
			StockName:       name,
			TransactionType: entity.TypeBuy,
			Quantity:        quantity,
			Price:           price,
		})
	})
}

// Sell executes a sell order for quantity shares of stockID.
//
// Inside one atomic unit: take one quote snapshot, verify the held quantity,
// credit the balance, decrement the holding (deleting the row when it reaches
// zero) and append a SELL record. Two concurrent sells of the same position
// cannot both pass the quantity check and commit: the second writer's stale
// version stamp aborts its unit with domain.ErrConcurrencyConflict.
func (t *tradeUsecase) Sell(ctx context.Context, username string, stockID uint, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	return t.store.Execute(ctx, func(tx TradeTx) error {
		acct, err := tx.Account(username)
		if err != nil {
			return err
		}

		name, price, err := t.quotes.GetCurrent(ctx, stockID)
		if err != nil {
			return err
		}

		prev, err := tx.Holding(username, name)
		if err != nil {
			return err
		}
		if !prev.Exists || prev.Quantity < quantity {
			return domain.ErrInsufficientHoldings
		}

		totalRevenue := price.Mul(decimal.NewFromInt(quantity))
		if err := tx.UpdateBalance(username, acct.Balance.Add(totalRevenue), acct.Version); err != nil {
			return err
		}

		if err := tx.DecrementOnSell(username, name, quantity, prev); err != nil {
			return err
		}

		return tx.AppendTransaction(&entity.Transaction{
			Username:        username,
			StockName:       name,
			TransactionType: entity.TypeSell,
			Quantity:        quantity,
			Price:           price,
		})
	})
}

// ListHoldings returns the user's current positions.
func (t *tradeUsecase) ListHoldings(ctx context.Context, username string) ([]entity.Holding, error) {
	return t.queries.ListHoldings(ctx, username)
}

// ListTransactions returns the full transaction log, newest first.
func (t *tradeUsecase) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return t.queries.ListTransactions(ctx)
}

// ListTransactionsByUsername returns one user's transaction history.
func (t *tradeUsecase) ListTransactionsByUsername(ctx context.Context, username string) ([]entity.Transaction, error) {
	return t.queries.ListTransactionsByUsername(ctx, username)
}

// ListTransactionsByDate returns the transactions of one calendar day.
func (t *tradeUsecase) ListTransactionsByDate(ctx context.Context, day time.Time) ([]entity.Transaction, error) {
	return t.queries.ListTransactionsByDate(ctx, day)
}
