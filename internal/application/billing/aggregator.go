// Package billing contiene el núcleo del sistema: la agregación mensual de
// entregas por cliente y el libro de cobros manual. Son dos vistas de verdad
// independientes que no se reconcilian entre sí.
package billing

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/application/notify"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
)

// Aggregator produce resúmenes de facturación por período. Lectura pura:
// recalcula todo en cada llamada, no guarda nada y no tiene caché, así que
// dos llamadas con los mismos datos devuelven exactamente lo mismo.
type Aggregator struct {
	deliveryRepo repository.DeliveryRepository
	customerRepo repository.CustomerRepository
	wa           *notify.WhatsAppBuilder
}

// NewAggregator construye el agregador.
func NewAggregator(
	deliveryRepo repository.DeliveryRepository,
	customerRepo repository.CustomerRepository,
	wa *notify.WhatsAppBuilder,
) *Aggregator {
	return &Aggregator{
		deliveryRepo: deliveryRepo,
		customerRepo: customerRepo,
		wa:           wa,
	}
}

// PeriodRange calcula el rango semiabierto [año-mes-01, mesSiguiente-01) de
// un período. Diciembre rueda a enero del año siguiente vía la normalización
// de time.Date (mes 13 = enero). Fechas en UTC, igual que el libro de entregas.
func PeriodRange(month, year int) (from, to time.Time, err error) {
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return from, to, nil
}

// periodLabel etiqueta legible del período, ej. "Mar 2025".
func periodLabel(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// group acumulado de entregas de un cliente dentro del período.
type group struct {
	customerID string
	deliveries []*entity.Delivery
	bottles    int
}

// MonthSummary devuelve una fila por cliente con al menos una entrega en el
// período: conteo de entregas, botellones y monto re-preciado con la tarifa
// ACTUAL del cliente (no la suma de los montos congelados de cada entrega).
//
// Los clientes sin entregas en el período no aparecen; los grupos cuyo
// cliente fue borrado se omiten. Resultado ordenado por nombre de cliente.
func (a *Aggregator) MonthSummary(ctx context.Context, companyID string, month, year int) ([]*dto.SummaryRow, error) {
	groups, customers, err := a.collect(ctx, companyID, month, year)
	if err != nil {
		return nil, err
	}
	label := periodLabel(month, year)

	rows := make([]*dto.SummaryRow, 0, len(groups))
	for _, g := range groups {
		customer, ok := customers[g.customerID]
		if !ok {
			continue // cliente borrado: grupo huérfano, se omite
		}
		if g.bottles <= 0 {
			continue
		}
		rows = append(rows, &dto.SummaryRow{
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			Phone:           customer.Phone,
			RatePerBottle:   customer.RatePerBottle,
			Month:           label,
			TotalDeliveries: len(g.deliveries),
			TotalBottles:    g.bottles,
			TotalAmount:     customer.RatePerBottle.Mul(decimal.NewFromInt(int64(g.bottles))),
		})
	}
	sortSummaryRows(rows)
	return rows, nil
}

// SummaryMessages arma un mensaje de resumen mensual por cada fila del
// período: el texto completo de la plantilla y su deep link de WhatsApp.
// Un cliente sin teléfono corta la operación con error en vez de omitirse.
func (a *Aggregator) SummaryMessages(ctx context.Context, companyID string, month, year int) ([]*dto.SummaryMessage, error) {
	rows, err := a.MonthSummary(ctx, companyID, month, year)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SummaryMessage, 0, len(rows))
	for _, row := range rows {
		msg, err := a.wa.BuildSummary(*row)
		if err != nil {
			return nil, err
		}
		out = append(out, &dto.SummaryMessage{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Target:       msg.TargetAddress,
			Body:         msg.Body,
			Link:         msg.Link,
		})
	}
	return out, nil
}

// BillingView devuelve la vista de facturación con detalle por cliente
// (forma de respuesta histórica de GET /api/billing): filas con la lista de
// entregas del período, estado de pago y deep link de WhatsApp, más los
// grandes totales. Igual que la vista histórica, omite las filas con monto
// cero (cliente con tarifa 0).
func (a *Aggregator) BillingView(ctx context.Context, companyID string, month, year int) (*dto.BillingResponse, error) {
	groups, customers, err := a.collect(ctx, companyID, month, year)
	if err != nil {
		return nil, err
	}

	resp := &dto.BillingResponse{
		Bills:            make([]*dto.BillingRow, 0, len(groups)),
		GrandTotalAmount: decimal.Zero,
	}
	for _, g := range groups {
		customer, ok := customers[g.customerID]
		if !ok {
			continue
		}
		amount := customer.RatePerBottle.Mul(decimal.NewFromInt(int64(g.bottles)))
		if !amount.IsPositive() {
			continue
		}

		status := "Paid"
		details := make([]*dto.DeliveryResponse, 0, len(g.deliveries))
		for _, d := range g.deliveries {
			if d.Status == entity.DeliveryStatusUnpaid {
				status = "Unpaid"
			}
			details = append(details, &dto.DeliveryResponse{
				ID:         d.ID,
				CompanyID:  d.CompanyID,
				CustomerID: d.CustomerID,
				Date:       d.Date.Format("2006-01-02"),
				Bottles:    d.Bottles,
				Amount:     d.Amount,
				Status:     d.Status,
			})
		}

		link := ""
		if msg, err := a.wa.BuildReminder(customer.Name, customer.Phone, g.bottles, amount); err == nil {
			link = msg.Link
		}

		resp.Bills = append(resp.Bills, &dto.BillingRow{
			Customer: dto.CustomerResponse{
				ID:        customer.ID,
				CompanyID: customer.CompanyID,
				Name:      customer.Name,
				Phone:     customer.Phone,
				Rate:      customer.RatePerBottle,
			},
			TotalBottles: g.bottles,
			Amount:       amount,
			Status:       status,
			Deliveries:   details,
			WhatsappLink: link,
		})
		resp.GrandTotalBottles += g.bottles
		resp.GrandTotalAmount = resp.GrandTotalAmount.Add(amount)
	}
	sort.Slice(resp.Bills, func(i, j int) bool {
		ni, nj := strings.ToLower(resp.Bills[i].Customer.Name), strings.ToLower(resp.Bills[j].Customer.Name)
		if ni != nj {
			return ni < nj
		}
		return resp.Bills[i].Customer.ID < resp.Bills[j].Customer.ID
	})
	return resp, nil
}

// collect trae las entregas del período, las agrupa por cliente y carga el
// directorio de la empresa en un mapa para el join. La empresa del token es
// la única consultada: el aislamiento de tenant ya viene acotado por los
// repositorios.
func (a *Aggregator) collect(ctx context.Context, companyID string, month, year int) ([]*group, map[string]*entity.Customer, error) {
	from, to, err := PeriodRange(month, year)
	if err != nil {
		return nil, nil, err
	}
	deliveries, err := a.deliveryRepo.ListByCompanyAndRange(ctx, companyID, from, to)
	if err != nil {
		return nil, nil, err
	}

	byCustomer := make(map[string]*group)
	order := make([]*group, 0)
	for _, d := range deliveries {
		g, ok := byCustomer[d.CustomerID]
		if !ok {
			g = &group{customerID: d.CustomerID}
			byCustomer[d.CustomerID] = g
			order = append(order, g)
		}
		g.deliveries = append(g.deliveries, d)
		g.bottles += d.Bottles
	}

	list, err := a.customerRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	customers := make(map[string]*entity.Customer, len(list))
	for _, c := range list {
		customers[c.ID] = c
	}
	return order, customers, nil
}

func sortSummaryRows(rows []*dto.SummaryRow) {
	sort.Slice(rows, func(i, j int) bool {
		ni, nj := strings.ToLower(rows[i].CustomerName), strings.ToLower(rows[j].CustomerName)
		if ni != nj {
			return ni < nj
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})
}
