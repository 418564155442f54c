package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
)

// BillUseCase casos de uso del libro de cobros manual. Independiente del
// Aggregator: aquí el personal tipea montos a mano, no se derivan de entregas.
type BillUseCase struct {
	repo repository.BillRepository
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(repo repository.BillRepository) *BillUseCase {
	return &BillUseCase{repo: repo}
}

// Create registra un cobro manual. Valida monto presente, mes 1..12 y
// estado paid/unpaid (vacío = unpaid). Nada se persiste si la validación falla.
func (uc *BillUseCase) Create(ctx context.Context, companyID string, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if in.Amount.IsZero() || in.Year < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Month < 1 || in.Month > 12 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.BillStatusUnpaid
	}
	if status != entity.BillStatusPaid && status != entity.BillStatusUnpaid {
		return nil, domain.ErrInvalidInput
	}
	bill := &entity.Bill{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CustomerID:  in.CustomerID,
		Amount:      in.Amount,
		Month:       in.Month,
		Year:        in.Year,
		Status:      status,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// ListMonthwise lista los cobros de la empresa filtrados por año y, si
// month > 0, también por mes. Orden (year, month) ascendente.
func (uc *BillUseCase) ListMonthwise(ctx context.Context, companyID string, year, month int) ([]*dto.BillResponse, error) {
	if month != 0 && (month < 1 || month > 12) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}

// Update aplica un patch parcial a un cobro. Solo muta si la fila pertenece
// a la empresa del token; si no, ErrNotFound (punto de aislamiento de tenant).
func (uc *BillUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		bill.CustomerID = *in.CustomerID
	}
	if in.Amount != nil {
		bill.Amount = *in.Amount
	}
	if in.Month != nil {
		if *in.Month < 1 || *in.Month > 12 {
			return nil, domain.ErrInvalidInput
		}
		bill.Month = *in.Month
	}
	if in.Year != nil {
		if *in.Year < 1 {
			return nil, domain.ErrInvalidInput
		}
		bill.Year = *in.Year
	}
	if in.Status != nil {
		if *in.Status != entity.BillStatusPaid && *in.Status != entity.BillStatusUnpaid {
			return nil, domain.ErrInvalidInput
		}
		bill.Status = *in.Status
	}
	if in.Description != nil {
		bill.Description = *in.Description
	}
	if err := uc.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// Delete borra un cobro de la empresa del token; ErrNotFound si no existe o
// pertenece a otra empresa.
func (uc *BillUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.repo.Delete(ctx, companyID, id)
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	return &dto.BillResponse{
		ID:          b.ID,
		CompanyID:   b.CompanyID,
		CustomerID:  b.CustomerID,
		Amount:      b.Amount,
		Month:       b.Month,
		Year:        b.Year,
		Status:      b.Status,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}
