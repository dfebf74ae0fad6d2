// Package usecase implements the periodic portfolio email reports.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	tradingentity "broker_backend/internal/feature/trading/domain/entity"
)

// Recipient is one report target.
type Recipient struct {
	Username string
	Email    string
}

// UserDirectory lists the users a report run should cover.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserDirectory interface {
	ListRecipients(ctx context.Context) ([]Recipient, error)
}

// PortfolioReader reads a user's current positions.
type PortfolioReader interface {
	ListHoldings(ctx context.Context, username string) ([]tradingentity.Holding, error)
}

// ReportBuilder renders one user's holdings into a spreadsheet attachment.
type ReportBuilder interface {
	Build(username string, holdings []tradingentity.Holding) ([]byte, error)
}

// Mailer delivers one report email with its attachment.
type Mailer interface {
	Send(to, subject, body, attachmentName string, attachment []byte) error
}

// ReportUsecase sends every user their current portfolio as a spreadsheet.
type ReportUsecase struct {
	users     UserDirectory
	portfolio PortfolioReader
	builder   ReportBuilder
	mailer    Mailer
}

// NewReportUsecase creates a new ReportUsecase instance.
func NewReportUsecase(users UserDirectory, portfolio PortfolioReader, builder ReportBuilder, mailer Mailer) *ReportUsecase {
	return &ReportUsecase{users: users, portfolio: portfolio, builder: builder, mailer: mailer}
}

// SendPortfolioReports mails every user with an email address their current
// holdings. A failure for one user is logged and does not stop the run.
// Returns the number of reports sent.
func (r *ReportUsecase) SendPortfolioReports(ctx context.Context) (int, error) {
	recipients, err := r.users.ListRecipients(ctx)
	if err != nil {
		return 0, fmt.Errorf("list recipients: %w", err)
	}

	sent := 0
	for _, rec := range recipients {
		if rec.Email == "" {
			slog.Warn("skipping user without email", "username", rec.Username)
			continue
		}

		holdings, err := r.portfolio.ListHoldings(ctx, rec.Username)
		if err != nil {
			slog.Error("failed to load holdings for report", "username", rec.Username, "error", err)
			continue
		}

		attachment, err := r.builder.Build(rec.Username, holdings)
		if err != nil {
			slog.Error("failed to build report", "username", rec.Username, "error", err)
			continue
		}

		subject := "Your portfolio report"
		body := fmt.Sprintf("Hello %s,\n\nyour current portfolio is attached.\n", rec.Username)
		if err := r.mailer.Send(rec.Email, subject, body, "portfolio.xlsx", attachment); err != nil {
			slog.Error("failed to send report", "username", rec.Username, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}
