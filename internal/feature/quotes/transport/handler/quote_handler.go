// Package handler provides the HTTP handlers of the quotes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"broker_backend/internal/feature/quotes/domain"
	"broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/feature/quotes/transport/http/dto"
)

// QuotesUsecase is the quote read contract consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type QuotesUsecase interface {
	ListQuotes(ctx context.Context) ([]entity.Quote, error)
	GetQuote(ctx context.Context, id uint) (*entity.Quote, error)
}

// ScrapeUsecase triggers one refresh of the quote store from the feed.
type ScrapeUsecase interface {
	RefreshAll(ctx context.Context) (int, error)
}

// QuoteHandler handles HTTP requests for quote data.
type QuoteHandler struct {
	quotes  QuotesUsecase
	scraper ScrapeUsecase
}

// NewQuoteHandler creates a new QuoteHandler instance.
func NewQuoteHandler(quotes QuotesUsecase, scraper ScrapeUsecase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, scraper: scraper}
}

// List handles GET /stocks, returning every quote currently in the store.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.quotes.ListQuotes(c.Request.Context())
	if err != nil {
		slog.Error("list quotes failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quotes"})
		return
	}

	out := make([]dto.QuoteItem, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.QuoteItem{
			ID:        q.ID,
			Name:      q.Name,
			LastPrice: q.PriceText,
			High:      q.High,
			Low:       q.Low,
			Change:    q.Change,
			Volume:    q.Volume,
			ScrapedAt: q.ScrapedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /stocks/:id, returning one quote.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}

	q, err := h.quotes.GetQuote(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
			return
		}
		slog.Error("get quote failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteItem{
		ID:        q.ID,
		Name:      q.Name,
		LastPrice: q.PriceText,
		High:      q.High,
		Low:       q.Low,
		Change:    q.Change,
		Volume:    q.Volume,
		ScrapedAt: q.ScrapedAt,
	})
}

// Scrape handles POST /admin/scrape, refreshing the store from the feed.
func (h *QuoteHandler) Scrape(c *gin.Context) {
	count, err := h.scraper.RefreshAll(c.Request.Context())
	if err != nil {
		slog.Error("scrape failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "scrape failed"})
		return
	}
	slog.Info("scrape completed", "quotes", count)
	c.JSON(http.StatusOK, gin.H{"message": "scrape completed", "quotes": count})
}
