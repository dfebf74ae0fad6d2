// Package handler provides the HTTP handlers of the trading feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"broker_backend/internal/feature/trading/domain"
	"broker_backend/internal/feature/trading/domain/entity"
	"broker_backend/internal/feature/trading/transport/http/dto"
)

// TradeUsecase is the trade executor contract consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type TradeUsecase interface {
	Buy(ctx context.Context, username string, stockID uint, quantity int64) error
	Sell(ctx context.Context, username string, stockID uint, quantity int64) error
	ListHoldings(ctx context.Context, username string) ([]entity.Holding, error)
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)
	ListTransactionsByUsername(ctx context.Context, username string) ([]entity.Transaction, error)
	ListTransactionsByDate(ctx context.Context, day time.Time) ([]entity.Transaction, error)
}

// TradeHandler handles HTTP requests for trade execution and history.
type TradeHandler struct {
	trades TradeUsecase
}

// NewTradeHandler creates a new TradeHandler instance.
func NewTradeHandler(trades TradeUsecase) *TradeHandler {
	return &TradeHandler{trades: trades}
}

// Buy handles POST /trade/buy.
func (h *TradeHandler) Buy(c *gin.Context) {
	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.trades.Buy(c.Request.Context(), req.Username, req.StockID, req.Quantity); err != nil {
		h.writeTradeError(c, "buy", req, err)
		return
	}
	slog.Info("buy executed", "username", req.Username, "stock_id", req.StockID, "quantity", req.Quantity)
	c.JSON(http.StatusOK, gin.H{"message": "stock purchased successfully"})
}

// Sell handles POST /trade/sell.
func (h *TradeHandler) Sell(c *gin.Context) {
	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.trades.Sell(c.Request.Context(), req.Username, req.StockID, req.Quantity); err != nil {
		h.writeTradeError(c, "sell", req, err)
		return
	}
	slog.Info("sell executed", "username", req.Username, "stock_id", req.StockID, "quantity", req.Quantity)
	c.JSON(http.StatusOK, gin.H{"message": "stock sold successfully"})
}

// writeTradeError maps executor failures onto HTTP responses. Business
// failures keep their detail; anything else is logged server-side and
// returned as a generic storage failure.
func (h *TradeHandler) writeTradeError(c *gin.Context, op string, req dto.TradeReq, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrQuoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientHoldings),
		errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidQuote):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("trade failed", "op", op, "username", req.Username,
			"stock_id", req.StockID, "quantity", req.Quantity, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "trade failed"})
	}
}

// Holdings handles GET /trade/holdings/:username. An empty portfolio is a
// 200 with an empty array, not an error.
func (h *TradeHandler) Holdings(c *gin.Context) {
	holdings, err := h.trades.ListHoldings(c.Request.Context(), c.Param("username"))
	if err != nil {
		slog.Error("list holdings failed", "username", c.Param("username"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load holdings"})
		return
	}

	out := make([]dto.HoldingItem, 0, len(holdings))
	for _, hd := range holdings {
		out = append(out, dto.HoldingItem{
			StockName:     hd.StockName,
			Quantity:      hd.Quantity,
			PurchasePrice: hd.PurchasePrice.String(),
			PurchaseDate:  hd.PurchaseDate,
		})
	}
	c.JSON(http.StatusOK, out)
}

// List handles GET /transactions/list.
func (h *TradeHandler) List(c *gin.Context) {
	records, err := h.trades.ListTransactions(c.Request.Context())
	if err != nil {
		slog.Error("list transactions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, toTransactionItems(records))
}

// SearchByUsername handles GET /transactions/search/byusername?username=...
func (h *TradeHandler) SearchByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	records, err := h.trades.ListTransactionsByUsername(c.Request.Context(), username)
	if err != nil {
		slog.Error("search transactions failed", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, toTransactionItems(records))
}

// SearchByDate handles GET /transactions/search/bydate?date=2006-01-02.
func (h *TradeHandler) SearchByDate(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	records, err := h.trades.ListTransactionsByDate(c.Request.Context(), day)
	if err != nil {
		slog.Error("search transactions failed", "date", c.Query("date"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, toTransactionItems(records))
}

func toTransactionItems(records []entity.Transaction) []dto.TransactionItem {
	out := make([]dto.TransactionItem, 0, len(records))
	for _, r := range records {
		out = append(out, dto.TransactionItem{
			ID:              r.ID,
			Username:        r.Username,
			StockName:       r.StockName,
			TransactionType: r.TransactionType,
			Quantity:        r.Quantity,
			Price:           r.Price.String(),
			TransactionDate: r.TransactionDate,
		})
	}
	return out
}
