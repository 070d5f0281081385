package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/middlewares"
	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
)

type AdminUserHandler struct {
	adminUserService *services.AdminUserService
}

func NewAdminUserHandler(adminUserService *services.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{adminUserService: adminUserService}
}

// List handles GET /admin/admins (super admin only; password hashes are
// never serialized).
func (h *AdminUserHandler) List(c *gin.Context) {
	admins, err := h.adminUserService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, admins, "")
}

// Delete handles DELETE /admin/admins/:id (super admin only).
func (h *AdminUserHandler) Delete(c *gin.Context) {
	caller, ok := middlewares.CurrentAdmin(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	err := h.adminUserService.Delete(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			responses.Fail(c, http.StatusForbidden, err, "")
		case errors.Is(err, services.ErrNotFound):
			responses.Fail(c, http.StatusNotFound, nil, "Admin not found")
		default:
			responses.Fail(c, http.StatusInternalServerError, err, "")
		}
		return
	}

	responses.Success(c, http.StatusOK, nil, "Admin user deleted successfully")
}
