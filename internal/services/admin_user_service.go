package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/corexify/backend/internal/models"
)

// AdminUserService covers the super-admin-only management surface.
type AdminUserService struct {
	adminRepo AdminUserRepository

	// superAdminEmail is the configured primary super admin. That account
	// is protected from deletion no matter who asks.
	superAdminEmail string
}

func NewAdminUserService(adminRepo AdminUserRepository, superAdminEmail string) *AdminUserService {
	return &AdminUserService{
		adminRepo:       adminRepo,
		superAdminEmail: strings.ToLower(superAdminEmail),
	}
}

func (s *AdminUserService) List(ctx context.Context) ([]models.AdminUser, error) {
	return s.adminRepo.GetAll(ctx)
}

// Delete removes an admin account. Callers cannot delete themselves, and
// the primary super admin can never be deleted, regardless of the
// caller's own flags.
func (s *AdminUserService) Delete(ctx context.Context, caller *models.AdminUser, targetID string) error {
	if caller.ID.Hex() == targetID {
		return fmt.Errorf("%w: you cannot delete your own account", ErrForbidden)
	}

	target, err := s.adminRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("%w: admin", ErrNotFound)
	}

	if s.superAdminEmail != "" && target.Email == s.superAdminEmail {
		return fmt.Errorf("%w: the primary super admin account cannot be deleted", ErrForbidden)
	}

	return s.adminRepo.Delete(ctx, targetID)
}
