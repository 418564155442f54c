package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la empresa de reparto de agua.
// Phone se guarda normalizado: 10 dígitos nacionales, sin prefijo de país
// ni ceros a la izquierda (ver pkg/phone).
type Customer struct {
	ID            string
	CompanyID     string
	Name          string
	Phone         string
	RatePerBottle decimal.Decimal // precio por botellón; nunca negativo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
