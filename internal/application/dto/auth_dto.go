package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
// CompanyID identifica el tenant; debe ser único (una cuenta por empresa).
type RegisterRequest struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// AdminResponse cuenta administradora en respuestas (sin hash de password).
type AdminResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido + datos de la cuenta.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
