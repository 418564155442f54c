package repository

import (
	"context"
	"time"

	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para Delivery,
// acotado por companyID en todas las operaciones.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Delivery, error)
	// ListByCompany devuelve las entregas de la empresa ordenadas por fecha descendente.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Delivery, error)
	// ListByCompanyAndRange devuelve las entregas con from <= date < to
	// (intervalo semiabierto), ordenadas por fecha ascendente.
	ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.Delivery, error)
	Update(ctx context.Context, delivery *entity.Delivery) error
	Delete(ctx context.Context, companyID, id string) error
}
