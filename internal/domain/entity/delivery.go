package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una entrega.
const (
	DeliveryStatusPaid   = "paid"
	DeliveryStatusUnpaid = "unpaid" // estado por defecto al registrar
)

// Delivery representa una entrega de botellones a un cliente en una fecha.
//
// Amount es una fotografía congelada: se calcula al escribir como
// bottles × tarifa vigente del cliente y NO se recalcula si la tarifa
// cambia después. El resumen mensual, en cambio, re-precia con la tarifa
// actual (ver billing.Aggregator); son dos conceptos distintos a propósito.
type Delivery struct {
	ID         string
	CompanyID  string
	CustomerID string
	Date       time.Time // fecha calendario; la hora no tiene significado
	Bottles    int
	Amount     decimal.Decimal
	Status     string // paid | unpaid
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
