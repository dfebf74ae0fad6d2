package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"broker_backend/internal/app/di"
	"broker_backend/internal/app/router"
	adminadapters "broker_backend/internal/feature/admin/adapters"
	adminhandler "broker_backend/internal/feature/admin/transport/handler"
	adminusecase "broker_backend/internal/feature/admin/usecase"
	authadapters "broker_backend/internal/feature/auth/adapters"
	authhandler "broker_backend/internal/feature/auth/transport/handler"
	authusecase "broker_backend/internal/feature/auth/usecase"
	quoteshandler "broker_backend/internal/feature/quotes/transport/handler"
	quotesusecase "broker_backend/internal/feature/quotes/usecase"
	reporthandler "broker_backend/internal/feature/reports/transport/handler"
	tradingadapters "broker_backend/internal/feature/trading/adapters"
	tradehandler "broker_backend/internal/feature/trading/transport/handler"
	tradingusecase "broker_backend/internal/feature/trading/usecase"
	infradb "broker_backend/internal/platform/db"
	jwtmw "broker_backend/internal/platform/jwt"
	infraredis "broker_backend/internal/platform/redis"
)

func main() {
	// .env is optional; plain environment variables work as well.
	_ = godotenv.Load()

	db := infradb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, running without quote cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	quoteRepo := di.NewQuoteRepository(db, rdb)
	tradeStore := tradingadapters.NewTradeStore(db)

	// Usecases
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	quotesUC := quotesusecase.NewQuotesUsecase(quoteRepo)
	scrapeUC := di.NewScrapeUsecase(quoteRepo)
	tradeUC := tradingusecase.NewTradeUsecase(tradeStore, tradeStore,
		tradingadapters.NewQuoteSource(quoteRepo))
	adminUC := adminusecase.NewAdminUsecase(
		adminadapters.NewUserAdminRepository(db),
		tradeStore, tradeStore,
		adminadapters.NewHoldingAdminRepository(db))
	reportUC := di.NewReportUsecase(db)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	quoteH := quoteshandler.NewQuoteHandler(quotesUC, scrapeUC)
	tradeH := tradehandler.NewTradeHandler(tradeUC)
	adminH := adminhandler.NewAdminHandler(adminUC)
	reportH := reporthandler.NewReportHandler(reportUC)

	r := router.NewRouter(authH, tradeH, quoteH, adminH, reportH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
