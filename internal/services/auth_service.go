package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/repositories"
	"github.com/corexify/backend/internal/utils"
)

// AdminUserRepository is the slice of the admin_users collection the auth
// and admin-management services need.
type AdminUserRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) (string, error)
	GetAll(ctx context.Context) ([]models.AdminUser, error)
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type AuthService struct {
	adminRepo AdminUserRepository
	jwtSecret []byte
}

func NewAuthService(adminRepo AdminUserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{adminRepo: adminRepo, jwtSecret: jwtSecret}
}

// Login verifies credentials and issues a 24h token. Both an unknown email
// and a wrong password come back as ErrInvalidCredentials so the endpoint
// reveals nothing about which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(admin.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

// Register creates a new admin account. The caller must already have been
// checked for super-admin rights; this only enforces email uniqueness.
func (s *AuthService) Register(ctx context.Context, email, password, name string, isSuperAdmin bool) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("%w: admin with this email", ErrConflict)
	}

	hash, err := utils.Hash(password)
	if err != nil {
		return "", err
	}

	admin := &models.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		IsSuperAdmin: isSuperAdmin,
	}

	id, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return "", fmt.Errorf("%w: admin with this email", ErrConflict)
		}
		return "", err
	}
	return id, nil
}

// Authenticate resolves a bearer token to a live admin record. A valid
// signature is not enough: the admin must still exist, so tokens held by
// deleted accounts stop working here.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*models.AdminUser, error) {
	claims, err := utils.VerifyToken(tokenStr, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	admin, err := s.adminRepo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUnknownTokenSubject
	}
	return admin, nil
}
