package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
	"github.com/corexify/backend/internal/utils"
)

type SubscriberHandler struct {
	subscriberService *services.SubscriberService
}

func NewSubscriberHandler(subscriberService *services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// Subscribe handles the public POST /api/subscribe.
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Email is required")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid email address")
		return
	}

	id, err := h.subscriberService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			c.JSON(http.StatusOK, responses.APIResponse{
				Status:  "exists",
				Message: "You are already subscribed!",
			})
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Successfully subscribed to the newsletter!")
}

// List handles GET /admin/subscribers.
func (h *SubscriberHandler) List(c *gin.Context) {
	subscribers, err := h.subscriberService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, subscribers, "")
}

// Delete handles DELETE /admin/subscribers/:id.
func (h *SubscriberHandler) Delete(c *gin.Context) {
	err := h.subscriberService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Subscriber not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Subscriber deleted successfully")
}
