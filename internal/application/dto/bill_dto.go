package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBillRequest body para POST /api/bills.
type CreateBillRequest struct {
	CustomerID  string          `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"` // 1..12
	Year        int             `json:"year"`
	Status      string          `json:"status"` // paid | unpaid; vacío = unpaid
	Description string          `json:"description"`
}

// UpdateBillRequest body para PUT /api/bills/:id. Los campos en cero/vacío
// conservan el valor actual (patch parcial, como el findOneAndUpdate original).
type UpdateBillRequest struct {
	CustomerID  *string          `json:"customer_id"`
	Amount      *decimal.Decimal `json:"amount"`
	Month       *int             `json:"month"`
	Year        *int             `json:"year"`
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
}

// BillResponse registro del libro de cobros en respuestas.
type BillResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CustomerID  string          `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
