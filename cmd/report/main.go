// Command report emails every registered user an Excel snapshot of their
// portfolio and exits. Intended for cron, alongside the in-server
// POST /admin/reports/send trigger.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"broker_backend/internal/app/di"
	infradb "broker_backend/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()
	reportUC := di.NewReportUsecase(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	sent, err := reportUC.SendPortfolioReports(ctx)
	if err != nil {
		slog.Error("report run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("report run completed", "sent", sent)
}
