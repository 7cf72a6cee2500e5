package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/finance"
	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/services"
)

type PlotHandler struct {
	plotService      services.PlotService
	dashboardService services.DashboardService
}

func NewPlotHandler(plotService services.PlotService, dashboardService services.DashboardService) *PlotHandler {
	return &PlotHandler{plotService: plotService, dashboardService: dashboardService}
}

type CreatePlotRequest struct {
	PlotNumber  string  `json:"plot_number" binding:"required"`
	ProjectName string  `json:"project_name" binding:"required"`
	Location    string  `json:"location"`
	AreaSqft    float64 `json:"area_sqft"`
	Facing      string  `json:"facing"`
	forms.PlotFinancialForm
}

func (h *PlotHandler) CreatePlot(c *gin.Context) {
	var req CreatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	parsed, violations := forms.ParsePlotFinancials(req.PlotFinancialForm)
	if !violations.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
		return
	}

	plot := &models.PlotListing{
		PlotNumber:     req.PlotNumber,
		ProjectName:    req.ProjectName,
		Location:       req.Location,
		AreaSqft:       req.AreaSqft,
		Facing:         req.Facing,
		Status:         string(models.PlotOpen),
		TotalAmount:    parsed.TotalAmount,
		BookingAmount:  parsed.BookingAmount,
		AmountReceived: parsed.AmountReceived,
		CreatedBy:      currentUserID(c),
	}
	if err := h.plotService.CreatePlot(plot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plot"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, plot)
}

func (h *PlotHandler) GetPlot(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	plot, err := h.plotService.GetPlotByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plot":            plot,
		"balance_display": finance.FormatAmount(plot.BalanceAmount),
	})
}

func (h *PlotHandler) ListPlots(c *gin.Context) {
	status := c.Query("status")

	var plots []models.PlotListing
	var err error
	if status != "" {
		plots, err = h.plotService.GetPlotsByStatus(status)
	} else {
		plots, err = h.plotService.GetAllPlots()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plots"})
		return
	}
	c.JSON(http.StatusOK, plots)
}

func (h *PlotHandler) UpdateFinancials(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var form forms.PlotFinancialForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	plot, violations, err := h.plotService.UpdateFinancials(id, form)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plot"})
		return
	}
	if !violations.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, plot)
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (h *PlotHandler) RecordPayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
		return
	}

	plot, err := h.plotService.RecordPayment(id, req.Amount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}
	c.JSON(http.StatusOK, plot)
}

type UpdatePlotStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	CustomerID *uint  `json:"customer_id"`
}

func (h *PlotHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req UpdatePlotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	switch models.PlotStatus(req.Status) {
	case models.PlotOpen, models.PlotBooked, models.PlotRegistered, models.PlotSold:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plot status"})
		return
	}

	plot, err := h.plotService.GetPlotByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plot"})
		return
	}

	plot.Status = req.Status
	if req.CustomerID != nil {
		plot.CustomerID = req.CustomerID
	}
	if err := h.plotService.UpdatePlot(plot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plot"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, plot)
}

func (h *PlotHandler) DeletePlot(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.plotService.DeletePlot(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plot"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
