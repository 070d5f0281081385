package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
	"github.com/corexify/backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles the public POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "No data provided")
		return
	}

	required := []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"message", req.Message},
	}
	for _, f := range required {
		if f.value == "" {
			responses.Fail(c, http.StatusBadRequest, nil, f.name+" is required")
			return
		}
	}
	if !utils.ValidateEmail(req.Email) {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid email address")
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	id, err := h.contactService.Submit(c.Request.Context(), contact)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Contact form submitted successfully")
}

// List handles GET /admin/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, contacts, "")
}

// MarkAsRead handles PUT /admin/contacts/:id/read.
func (h *ContactHandler) MarkAsRead(c *gin.Context) {
	err := h.contactService.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Contact not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Contact marked as read")
}

// Delete handles DELETE /admin/contacts/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	err := h.contactService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Contact not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Contact deleted successfully")
}
