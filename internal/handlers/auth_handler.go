package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Email and password are required")
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.Fail(c, http.StatusUnauthorized, nil, "Invalid credentials")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	}, "Login successful")
}

// Register handles POST /auth/register. Routed behind Authenticate and
// RequireSuperAdmin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email        string `json:"email"    binding:"required,email"`
		Password     string `json:"password" binding:"required,min=6"`
		Name         string `json:"name"     binding:"required"`
		IsSuperAdmin bool   `json:"is_super_admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Email, password, and name are required")
		return
	}

	adminID, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.IsSuperAdmin)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			responses.Fail(c, http.StatusConflict, nil, "Admin with this email already exists")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"admin_id": adminID}, "Admin user created successfully")
}
