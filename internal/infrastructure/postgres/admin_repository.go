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

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository (usable con pool o tx).
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste una nueva cuenta administradora.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, company_id, company_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		admin.ID, admin.CompanyID, admin.CompanyName, admin.Email, admin.PasswordHash,
		admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByEmail obtiene una cuenta por email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, company_id, company_name, email, password_hash, created_at, updated_at
		FROM admins WHERE email = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get admin by email")
}

// GetByCompanyID obtiene la cuenta de una empresa.
func (r *AdminRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.Admin, error) {
	query := `
		SELECT id, company_id, company_name, email, password_hash, created_at, updated_at
		FROM admins WHERE company_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID), "get admin by company")
}

func (r *AdminRepo) scanOne(row pgx.Row, op string) (*entity.Admin, error) {
	var a entity.Admin
	err := row.Scan(&a.ID, &a.CompanyID, &a.CompanyName, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
