package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste un nuevo cobro manual.
func (r *BillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (id, company_id, customer_id, amount, month, year, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		bill.ID, bill.CompanyID, bill.CustomerID, bill.Amount, bill.Month, bill.Year,
		bill.Status, bill.Description, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene un cobro por ID dentro de la empresa.
func (r *BillRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Bill, error) {
	query := `
		SELECT id, company_id, customer_id, amount, month, year, status, description, created_at
		FROM bills WHERE company_id = $1 AND id = $2`
	var b entity.Bill
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&b.ID, &b.CompanyID, &b.CustomerID, &b.Amount, &b.Month, &b.Year, &b.Status, &b.Description, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &b, nil
}

// ListByCompany filtra por año y, si month > 0, también por mes.
// Orden (year, month) ascendente como el listado monthwise histórico.
func (r *BillRepo) ListByCompany(ctx context.Context, companyID string, year, month int) ([]*entity.Bill, error) {
	query := `
		SELECT id, company_id, customer_id, amount, month, year, status, description, created_at
		FROM bills WHERE company_id = $1`
	args := []any{companyID}
	if year > 0 {
		args = append(args, year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if month > 0 {
		args = append(args, month)
		query += fmt.Sprintf(" AND month = $%d", len(args))
	}
	query += " ORDER BY year, month, created_at"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.CustomerID, &b.Amount, &b.Month, &b.Year, &b.Status, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un cobro de la empresa.
func (r *BillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	query := `
		UPDATE bills
		SET customer_id = $3, amount = $4, month = $5, year = $6, status = $7, description = $8
		WHERE company_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		bill.CompanyID, bill.ID, bill.CustomerID, bill.Amount, bill.Month, bill.Year, bill.Status, bill.Description,
	)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra solo si la fila pertenece a la empresa; si no, ErrNotFound.
func (r *BillRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM bills WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
