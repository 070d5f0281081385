package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
	"github.com/corexify/backend/internal/utils"
)

// RegisterValidators installs the custom binding rules the handlers rely
// on. Call once before serving requests (or binding in tests).
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", utils.PhoneValidator)
	}
}

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

type inquiryForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"required,phone"`
	Country     string `form:"country" binding:"required"`
	City        string `form:"city"`
	State       string `form:"state"`
	Company     string `form:"company"`
	ClientType  string `form:"clientType" binding:"required"`
	Domain      string `form:"domain" binding:"required"`
	ProjectType string `form:"projectType" binding:"required"`
	StartDate   string `form:"startDate"`
	Timeline    string `form:"timeline" binding:"required"`
	Budget      string `form:"budget" binding:"required"`
	Message     string `form:"message" binding:"required"`
}

// Submit handles the public POST /api/project-inquiry (multipart, with a
// repeatable "files" field for attachments).
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req inquiryForm
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, inquiryBindError(err))
		return
	}

	inquiry := &models.ProjectInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		City:        req.City,
		State:       req.State,
		Company:     req.Company,
		ClientType:  req.ClientType,
		Domain:      req.Domain,
		ProjectType: req.ProjectType,
		StartDate:   req.StartDate,
		Timeline:    req.Timeline,
		Budget:      req.Budget,
		Message:     req.Message,
	}

	// Attachments are optional; each file is uploaded independently and
	// a failed upload just skips that file.
	files := []services.FileUpload{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			f, err := fh.Open()
			if err != nil {
				continue
			}
			defer f.Close()
			files = append(files, services.FileUpload{Reader: f, Filename: fh.Filename})
		}
	}

	id, err := h.inquiryService.Submit(c.Request.Context(), inquiry, files)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Project inquiry submitted successfully")
}

// inquiryBindError turns validator output into the messages the form
// frontend expects: missing fields first, then syntax problems.
func inquiryBindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "No data provided"
	}

	missing := []string{}
	invalid := ""
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, lowerFirst(fe.Field()))
		case "email":
			if invalid == "" {
				invalid = "Invalid email address"
			}
		case "phone":
			if invalid == "" {
				invalid = "Invalid phone number"
			}
		}
	}

	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	if invalid != "" {
		return invalid
	}
	return "Invalid form data"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// List handles GET /admin/inquiries.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.inquiryService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, inquiries, "")
}

// UpdateStatus handles PUT /admin/inquiries/:id/status.
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Status is required")
		return
	}

	err := h.inquiryService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Inquiry not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Inquiry status updated successfully")
}

// Delete handles DELETE /admin/inquiries/:id.
func (h *InquiryHandler) Delete(c *gin.Context) {
	err := h.inquiryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Inquiry not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Inquiry deleted successfully")
}
