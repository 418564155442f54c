package repository

import (
	"context"

	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para cuentas administradoras.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	GetByCompanyID(ctx context.Context, companyID string) (*entity.Admin, error)
}
