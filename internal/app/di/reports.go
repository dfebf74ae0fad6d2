package di

import (
	"gorm.io/gorm"

	reportsadapters "broker_backend/internal/feature/reports/adapters"
	reportsusecase "broker_backend/internal/feature/reports/usecase"
	tradingadapters "broker_backend/internal/feature/trading/adapters"
)

// NewReportUsecase creates a fully configured portfolio report sender.
func NewReportUsecase(db *gorm.DB) *reportsusecase.ReportUsecase {
	users := reportsadapters.NewUserDirectory(db)
	portfolio := tradingadapters.NewTradeStore(db)
	builder := reportsadapters.NewExcelBuilder()
	mailer := reportsadapters.NewSMTPMailer(reportsadapters.LoadSMTPConfig())
	return reportsusecase.NewReportUsecase(users, portfolio, builder, mailer)
}
