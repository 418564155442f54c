// Package delivery implementa el libro de entregas: registro diario de
// botellones con monto congelado al momento de escribir.
package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
)

// dateLayout formato de fecha calendario en la API.
const dateLayout = "2006-01-02"

// UseCase casos de uso del libro de entregas.
type UseCase struct {
	deliveryRepo repository.DeliveryRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time // inyectable para fijar "hoy" en tests
}

// NewUseCase construye el caso de uso.
func NewUseCase(deliveryRepo repository.DeliveryRepository, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{
		deliveryRepo: deliveryRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// Create registra una entrega. El monto se congela aquí:
// bottles × tarifa vigente del cliente en este instante. Si la tarifa cambia
// después, este registro conserva el precio histórico.
//
// La lectura de la tarifa y la escritura de la entrega son dos operaciones
// sin transacción entre sí; una tarifa que cambie en medio produce un monto
// viejo-pero-consistente y se acepta tal cual.
func (uc *UseCase) Create(ctx context.Context, companyID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.CustomerID == "" || in.Bottles <= 0 {
		return nil, domain.ErrInvalidInput
	}
	status, ok := normalizeStatus(in.Status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	d := &entity.Delivery{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: customer.ID,
		Date:       date,
		Bottles:    in.Bottles,
		Amount:     customer.RatePerBottle.Mul(decimal.NewFromInt(int64(in.Bottles))),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.deliveryRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// List devuelve todas las entregas de la empresa, más recientes primero.
func (uc *UseCase) List(ctx context.Context, companyID string) (*dto.DeliveryListResponse, error) {
	list, err := uc.deliveryRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{Deliveries: out}, nil
}

// Update edita una entrega. Cambiar bottles, fecha o cliente recalcula el
// monto con la tarifa ACTUAL del cliente destino; a partir de ahí el monto
// queda congelado otra vez.
func (uc *UseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	d, err := uc.deliveryRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Bottles <= 0 {
		return nil, domain.ErrInvalidInput
	}
	status, ok := normalizeStatus(in.Status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customerID := d.CustomerID
	if in.CustomerID != "" {
		customerID = in.CustomerID
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	d.CustomerID = customer.ID
	d.Date = date
	d.Bottles = in.Bottles
	d.Amount = customer.RatePerBottle.Mul(decimal.NewFromInt(int64(in.Bottles)))
	d.Status = status
	d.UpdatedAt = uc.now()
	if err := uc.deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// Delete elimina una entrega.
func (uc *UseCase) Delete(ctx context.Context, companyID, id string) error {
	d, err := uc.deliveryRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.deliveryRepo.Delete(ctx, companyID, id)
}

// parseDate interpreta "2006-01-02" como fecha calendario en UTC;
// vacío = hoy. La hora del día no tiene significado en el libro de entregas.
func (uc *UseCase) parseDate(s string) (time.Time, error) {
	if s == "" {
		n := uc.now().UTC()
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func normalizeStatus(s string) (string, bool) {
	switch s {
	case "":
		return entity.DeliveryStatusUnpaid, true
	case entity.DeliveryStatusPaid, entity.DeliveryStatusUnpaid:
		return s, true
	default:
		return "", false
	}
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		CustomerID: d.CustomerID,
		Date:       d.Date.Format(dateLayout),
		Bottles:    d.Bottles,
		Amount:     d.Amount,
		Status:     d.Status,
	}
}
