package dto

import "github.com/shopspring/decimal"

// CreateDeliveryRequest body para POST /api/deliveries.
// Date en formato "2006-01-02"; vacío = hoy. El monto NO viene del cliente:
// se calcula al guardar como bottles × tarifa vigente.
type CreateDeliveryRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Bottles    int    `json:"bottles"`
	Status     string `json:"status"` // paid | unpaid; vacío = unpaid
}

// UpdateDeliveryRequest body para PUT /api/deliveries/:id.
// Cambiar bottles o customer_id recalcula el monto con la tarifa actual.
type UpdateDeliveryRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Bottles    int    `json:"bottles"`
	Status     string `json:"status"`
}

// DeliveryResponse entrega en respuestas.
type DeliveryResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	CustomerID string          `json:"customer_id"`
	Date       string          `json:"date"` // "2006-01-02"
	Bottles    int             `json:"bottles"`
	Amount     decimal.Decimal `json:"amount"` // fotografía al momento de registrar
	Status     string          `json:"status"`
}

// DeliveryListResponse envoltura para GET /api/deliveries.
type DeliveryListResponse struct {
	Deliveries []*DeliveryResponse `json:"deliveries"`
}
