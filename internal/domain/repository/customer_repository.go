package repository

import (
	"context"

	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las operaciones están acotadas por companyID: el aislamiento de
// tenant se aplica aquí, en la frontera de acceso a datos, y no ruta por ruta.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete elimina directamente; las entregas existentes conservan la
	// referencia colgante (el agregador omite esos grupos).
	Delete(ctx context.Context, companyID, id string) error
}
