// Package pdf implementa el estado de cuenta mensual en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Período (ej. Mar 2025)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Teléfono | Entregas | Botellones | Total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Botellones del mes / TOTAL A COBRAR                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/Vanshit011/nandan-bottling/internal/application/billing"
	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 156}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa billing.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	businessName, periodLabel string,
	rows []*dto.SummaryRow,
	grandBottles int,
	grandAmount decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta mensual", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(businessName, periodLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(grandBottles, grandAmount))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y período (der).
func headerRow(businessName, periodLabel string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(businessName, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Estado de cuenta mensual", props.Text{
				Top: 7, Size: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(periodLabel, props.Text{
				Size: 12, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	headerRight := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right}
	return row.New(8).Add(
		text.NewCol(4, "Cliente", header),
		text.NewCol(2, "Teléfono", header),
		text.NewCol(2, "Entregas", headerRight),
		text.NewCol(2, "Botellones", headerRight),
		text.NewCol(2, "Total (₹)", headerRight),
	)
}

func tableDetailRow(r *dto.SummaryRow) core.Row {
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	return row.New(6).Add(
		text.NewCol(4, r.CustomerName, cell),
		text.NewCol(2, r.Phone, cell),
		text.NewCol(2, fmt.Sprintf("%d", r.TotalDeliveries), cellRight),
		text.NewCol(2, fmt.Sprintf("%d", r.TotalBottles), cellRight),
		text.NewCol(2, r.TotalAmount.StringFixed(2), cellRight),
	)
}

func totalsRow(grandBottles int, grandAmount decimal.Decimal) core.Row {
	label := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	return row.New(10).Add(
		text.NewCol(6, "Totales del período", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, fmt.Sprintf("%d botellones", grandBottles), label),
		text.NewCol(3, "₹ "+grandAmount.StringFixed(2), label),
	)
}
