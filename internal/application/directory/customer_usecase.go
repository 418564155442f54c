// Package directory implementa el directorio de clientes: altas, ediciones y
// bajas con unicidad de nombre por empresa y teléfono normalizado.
package directory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
	"github.com/Vanshit011/nandan-bottling/pkg/phone"
)

// CustomerUseCase casos de uso del directorio de clientes.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	countryCode string // prefijo de país que se quita al normalizar teléfonos
	fold        cases.Caser
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, countryCode string) *CustomerUseCase {
	return &CustomerUseCase{
		repo:        repo,
		countryCode: countryCode,
		fold:        cases.Fold(),
	}
}

// Create crea un cliente. El nombre debe ser único dentro de la empresa
// (comparación sin mayúsculas/minúsculas, con trim) y la tarifa no negativa.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	normalized, err := phone.Normalize(in.Phone, uc.countryCode)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	taken, err := uc.nameTaken(ctx, companyID, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          name,
		Phone:         normalized,
		RatePerBottle: in.Rate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes de la empresa ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, companyID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update edita nombre, teléfono y tarifa. Mantiene la unicidad de nombre
// dentro de la empresa excluyendo al propio cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	normalized, err := phone.Normalize(in.Phone, uc.countryCode)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	taken, err := uc.nameTaken(ctx, companyID, name, customer.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	customer.Name = name
	customer.Phone = normalized
	customer.RatePerBottle = in.Rate
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el cliente directamente. Las entregas previas conservan el
// customerId colgante: el agregador mensual omite esos grupos de forma
// determinista, así el borrado nunca rompe los resúmenes históricos.
func (uc *CustomerUseCase) Delete(ctx context.Context, companyID, id string) error {
	customer, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

// nameTaken compara el nombre (trim + case fold) contra los demás clientes de
// la empresa. excludeID permite que un Update conserve su propio nombre.
func (uc *CustomerUseCase) nameTaken(ctx context.Context, companyID, name, excludeID string) (bool, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return false, err
	}
	folded := uc.fold.String(strings.TrimSpace(name))
	for _, c := range list {
		if c.ID == excludeID {
			continue
		}
		if uc.fold.String(strings.TrimSpace(c.Name)) == folded {
			return true, nil
		}
	}
	return false, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Phone:     c.Phone,
		Rate:      c.RatePerBottle,
	}
}
