package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/middlewares"
	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /admin/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	caller, ok := middlewares.CurrentAdmin(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), caller)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusOK, stats, "")
}
