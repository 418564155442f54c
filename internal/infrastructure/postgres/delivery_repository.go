package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

const deliveryColumns = `id, company_id, customer_id, date, bottles, amount, status, created_at, updated_at`

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.CustomerID, d.Date, d.Bottles, d.Amount, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID dentro de la empresa.
func (r *DeliveryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries WHERE company_id = $1 AND id = $2`
	var d entity.Delivery
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&d.ID, &d.CompanyID, &d.CustomerID, &d.Date, &d.Bottles, &d.Amount, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return &d, nil
}

// ListByCompany lista las entregas de la empresa, más recientes primero.
func (r *DeliveryRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries WHERE company_id = $1 ORDER BY date DESC, created_at DESC`
	return r.list(ctx, query, companyID)
}

// ListByCompanyAndRange lista las entregas con from <= date < to (intervalo
// semiabierto: el primer día del mes siguiente queda fuera), fecha ascendente.
func (r *DeliveryRepo) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries WHERE company_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, created_at`
	return r.list(ctx, query, companyID, from, to)
}

// Update actualiza una entrega de la empresa.
func (r *DeliveryRepo) Update(ctx context.Context, d *entity.Delivery) error {
	query := `
		UPDATE deliveries
		SET customer_id = $3, date = $4, bottles = $5, amount = $6, status = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		d.CompanyID, d.ID, d.CustomerID, d.Date, d.Bottles, d.Amount, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	return nil
}

// Delete elimina una entrega por ID.
func (r *DeliveryRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM deliveries WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

func (r *DeliveryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Delivery, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.CustomerID, &d.Date, &d.Bottles, &d.Amount, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
