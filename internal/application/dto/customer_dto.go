package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// Rate es el precio por botellón; Phone acepta cualquier formato y se
// normaliza a 10 dígitos antes de guardar.
type CreateCustomerRequest struct {
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Rate  decimal.Decimal `json:"rate"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Rate  decimal.Decimal `json:"rate"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Rate      decimal.Decimal `json:"rate"`
}
