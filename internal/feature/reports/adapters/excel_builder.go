// Package adapters provides the delivery implementations of the reports feature.
package adapters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"broker_backend/internal/feature/reports/usecase"
	tradingentity "broker_backend/internal/feature/trading/domain/entity"
)

// excelBuilder renders holdings into an xlsx workbook.
type excelBuilder struct{}

// Compile-time check that excelBuilder implements ReportBuilder.
var _ usecase.ReportBuilder = (*excelBuilder)(nil)

// NewExcelBuilder creates a spreadsheet report builder.
func NewExcelBuilder() *excelBuilder {
	return &excelBuilder{}
}

// Build writes one sheet with a header row and one row per holding.
func (b *excelBuilder) Build(username string, holdings []tradingentity.Holding) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Portfolio"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	header := []interface{}{"Stock", "Quantity", "Purchase price", "Purchase date"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, h := range holdings {
		row := []interface{}{
			h.StockName,
			h.Quantity,
			h.PurchasePrice.String(),
			h.PurchaseDate.Format("2006-01-02 15:04"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row for %s: %w", h.StockName, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook for %s: %w", username, err)
	}
	return buf.Bytes(), nil
}
