package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/models"
	"estate_crm/internal/services"
)

type LeadHandler struct {
	leadService      services.LeadService
	dashboardService services.DashboardService
}

func NewLeadHandler(leadService services.LeadService, dashboardService services.DashboardService) *LeadHandler {
	return &LeadHandler{leadService: leadService, dashboardService: dashboardService}
}

type CreateLeadRequest struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Email       string  `json:"email"`
	Source      string  `json:"source"`
	Budget      float64 `json:"budget"`
	AssignedTo  *uint   `json:"assigned_to"`
	Notes       string  `json:"notes"`
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lead := &models.Lead{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Source:      req.Source,
		Budget:      req.Budget,
		AssignedTo:  req.AssignedTo,
		Notes:       req.Notes,
		CreatedBy:   currentUserID(c),
	}
	if err := h.leadService.CreateLead(lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	lead, err := h.leadService.GetLeadByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadService.GetAllLeads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetMyLeads(c *gin.Context) {
	leads, err := h.leadService.GetLeadsByAssignee(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.leadService.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

type AssignLeadRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (h *LeadHandler) AssignLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req AssignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.leadService.AssignLead(id, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "assigned"})
}

func (h *LeadHandler) ConvertLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	customer, err := h.leadService.ConvertToCustomer(id, currentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert lead"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, customer)
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.leadService.DeleteLead(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
