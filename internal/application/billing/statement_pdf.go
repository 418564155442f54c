package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
)

// StatementPDFGenerator define el puerto de salida para renderizar el estado
// de cuenta mensual. La implementación concreta usa Maroto (infrastructure/pdf).
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		businessName, periodLabel string,
		rows []*dto.SummaryRow,
		grandBottles int,
		grandAmount decimal.Decimal,
	) ([]byte, error)
}

// StatementUseCase genera el PDF del estado de cuenta mensual de la empresa:
// las mismas filas del agregador, en papel.
type StatementUseCase struct {
	agg          *Aggregator
	generator    StatementPDFGenerator
	businessName string
}

// NewStatementUseCase construye el caso de uso inyectando sus dependencias.
func NewStatementUseCase(agg *Aggregator, generator StatementPDFGenerator, businessName string) *StatementUseCase {
	return &StatementUseCase{agg: agg, generator: generator, businessName: businessName}
}

// DownloadStatementPDF agrega el período y rinde el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrInvalidInput      si month/year están fuera de rango.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, companyID string, month, year int) (pdfBytes []byte, filename string, err error) {
	rows, err := uc.agg.MonthSummary(ctx, companyID, month, year)
	if err != nil {
		return nil, "", err
	}

	grandBottles := 0
	grandAmount := decimal.Zero
	for _, r := range rows {
		grandBottles += r.TotalBottles
		grandAmount = grandAmount.Add(r.TotalAmount)
	}

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, uc.businessName, periodLabel(month, year), rows, grandBottles, grandAmount)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("statement-%04d-%02d.pdf", year, month)
	return pdfBytes, filename, nil
}
