package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro del libro de cobros.
const (
	BillStatusPaid   = "paid"
	BillStatusUnpaid = "unpaid" // estado por defecto
)

// Bill es un registro de cobro ingresado manualmente por el personal.
// Es un libro independiente del resumen calculado a partir de entregas:
// dos vistas de verdad separadas que no se reconcilian entre sí.
type Bill struct {
	ID          string
	CompanyID   string
	CustomerID  string
	Amount      decimal.Decimal
	Month       int // 1..12
	Year        int
	Status      string // paid | unpaid
	Description string
	CreatedAt   time.Time
}
