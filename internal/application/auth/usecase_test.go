package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vanshit011/nandan-bottling/internal/application/auth"
	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	pkgjwt "github.com/Vanshit011/nandan-bottling/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de auth: registro (una cuenta por empresa y por email, hash bcrypt)
// y login (el token emitido lleva el companyId de la cuenta).
// ──────────────────────────────────────────────────────────────────────────────

type fakeAdminRepo struct {
	admins []*entity.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.admins = append(r.admins, a)
	return nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByCompanyID(_ context.Context, companyID string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.CompanyID == companyID {
			return a, nil
		}
	}
	return nil, nil
}

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUseCase() (*auth.AuthUseCase, *fakeAdminRepo) {
	repo := &fakeAdminRepo{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "nandan-bottling-test",
	})
	return uc, repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		CompanyID:   "empresa-1",
		CompanyName: "Nandan Bottling",
		Email:       "admin@nandan.example",
		Password:    "secreto123",
	}
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_OK(t *testing.T) {
	uc, repo := newAuthUseCase()

	resp, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "empresa-1", resp.CompanyID)
	assert.Equal(t, "admin@nandan.example", resp.Email)

	require.Len(t, repo.admins, 1)
	assert.NotEqual(t, "secreto123", repo.admins[0].PasswordHash,
		"el password nunca se guarda en claro")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.CompanyID = "empresa-2"
	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmpresaDuplicada(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "otro@nandan.example"
	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "una sola cuenta por empresa")
}

func TestRegister_CamposVacios(t *testing.T) {
	uc, repo := newAuthUseCase()

	req := registerRequest()
	req.Password = ""
	_, err := uc.Register(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.admins)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_TokenLlevaCompanyID(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@nandan.example",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	_, companyID, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "empresa-1", companyID,
		"el token emitido acota todos los datos a la empresa de la cuenta")
}

// El email no distingue mayúsculas: se normaliza en registro y en login.
func TestLogin_EmailSinMayusculas(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ADMIN@Nandan.Example",
		Password: "secreto123",
	})
	assert.NoError(t, err)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@nandan.example",
		Password: "equivocado",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInexistente(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@nandan.example",
		Password: "da igual",
	})
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}
