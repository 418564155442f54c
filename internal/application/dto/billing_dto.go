package dto

import "github.com/shopspring/decimal"

// SummaryRow una fila del resumen mensual por cliente
// (GET /api/deliveries/month-on-month-summary).
//
// TotalAmount se re-precia con la tarifa ACTUAL del cliente; no es la suma
// de los montos congelados de cada entrega.
type SummaryRow struct {
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Phone           string          `json:"phone"`
	RatePerBottle   decimal.Decimal `json:"ratePerBottle"`
	Month           string          `json:"month"` // etiqueta "Mar 2025"
	TotalDeliveries int             `json:"totalDeliveries"`
	TotalBottles    int             `json:"totalBottles"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// SummaryMessage mensaje de resumen mensual prearmado por cliente
// (GET /api/billing/messages): listo para abrir como deep link de WhatsApp
// o despachar por la pasarela SMS.
type SummaryMessage struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Target       string `json:"target"` // <prefijo de país><teléfono>, ej. 919876543210
	Body         string `json:"body"`
	Link         string `json:"link"` // deep link wa.me
}

// BillingRow una fila de la vista de facturación con detalle
// (GET /api/billing). Conserva la forma de respuesta histórica.
type BillingRow struct {
	Customer     CustomerResponse    `json:"customer"`
	TotalBottles int                 `json:"totalBottles"`
	Amount       decimal.Decimal     `json:"amount"`
	Status       string              `json:"status"` // Paid si ninguna entrega del período está impaga
	Deliveries   []*DeliveryResponse `json:"deliveries"`
	WhatsappLink string              `json:"whatsappLink"`
}

// BillingResponse respuesta de GET /api/billing?month=M&year=Y.
type BillingResponse struct {
	Bills             []*BillingRow   `json:"bills"`
	GrandTotalBottles int             `json:"grandTotalBottles"`
	GrandTotalAmount  decimal.Decimal `json:"grandTotalAmount"`
}
