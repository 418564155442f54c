package repository

import (
	"context"

	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para el libro de cobros manual.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Bill, error)
	// ListByCompany filtra por año y, si month > 0, también por mes.
	// Resultado ordenado por (year, month) ascendente.
	ListByCompany(ctx context.Context, companyID string, year, month int) ([]*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	// Delete devuelve domain.ErrNotFound si la fila no existe o pertenece a otra empresa.
	Delete(ctx context.Context, companyID, id string) error
}
