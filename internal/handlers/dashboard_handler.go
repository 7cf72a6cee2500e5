package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_crm/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
