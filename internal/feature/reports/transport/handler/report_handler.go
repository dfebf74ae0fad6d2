// Package handler provides the HTTP handlers of the reports feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReportUsecase is the report delivery contract consumed by this handler.
type ReportUsecase interface {
	SendPortfolioReports(ctx context.Context) (int, error)
}

// ReportHandler handles HTTP requests for report delivery.
type ReportHandler struct {
	reports ReportUsecase
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(reports ReportUsecase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Send handles POST /admin/reports/send, mailing every user their portfolio.
func (h *ReportHandler) Send(c *gin.Context) {
	sent, err := h.reports.SendPortfolioReports(c.Request.Context())
	if err != nil {
		slog.Error("report run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report run failed"})
		return
	}
	slog.Info("report run completed", "sent", sent)
	c.JSON(http.StatusOK, gin.H{"message": "reports sent", "sent": sent})
}
