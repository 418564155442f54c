package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vanshit011/nandan-bottling/internal/application/dto"
	"github.com/Vanshit011/nandan-bottling/internal/domain"
	"github.com/Vanshit011/nandan-bottling/internal/domain/entity"
	"github.com/Vanshit011/nandan-bottling/internal/domain/repository"
	"github.com/Vanshit011/nandan-bottling/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de empresa y login.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Register crea la cuenta administradora de una empresa: hashea el password
// con bcrypt y persiste. Una sola cuenta por companyId y por email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AdminResponse, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if companyID == "" || in.CompanyName == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.adminRepo.GetByEmail(ctx, email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.adminRepo.GetByCompanyID(ctx, companyID); existing != nil {
		return nil, domain.ErrDuplicate // ya hay una cuenta para esa empresa
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CompanyName:  in.CompanyName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// Login verifica email/password, genera JWT con el companyId de la cuenta
// y retorna token + cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.CompanyID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Admin: *toAdminResponse(admin),
	}, nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		CompanyName: a.CompanyName,
		Email:       a.Email,
		CreatedAt:   a.CreatedAt,
	}
}
