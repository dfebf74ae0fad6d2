// Command scrape runs a single quote refresh from the feed and exits.
// Intended for cron, alongside the in-server POST /admin/scrape trigger.
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

	// The cache layer is skipped here; the server rebuilds it on demand.
	scrapeUC := di.NewScrapeUsecase(di.NewQuoteRepository(db, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := scrapeUC.RefreshAll(ctx)
	if err != nil {
		slog.Error("scrape failed", "error", err)
		os.Exit(1)
	}
	slog.Info("scrape completed", "quotes", count)
}
