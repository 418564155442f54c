package entity

import "time"

// Admin representa la cuenta administradora de una empresa embotelladora.
// Hay exactamente una cuenta por empresa: el CompanyID del token es el
// único tenant al que la sesión puede acceder.
type Admin struct {
	ID           string
	CompanyID    string
	CompanyName  string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
