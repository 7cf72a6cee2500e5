package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/forms"
	"estate_crm/internal/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type UpsertPerformanceRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Period string `json:"period"`
	forms.PerformanceForm
}

func (h *TeamHandler) UpsertPerformance(c *gin.Context) {
	var req UpsertPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	period := req.Period
	if period == "" {
		period = time.Now().Format("2006-01")
	}

	member, violations, err := h.teamService.UpsertPerformance(req.UserID, period, req.PerformanceForm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save performance"})
		return
	}
	if !violations.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) GetBoard(c *gin.Context) {
	period := c.Query("period")
	if period == "" {
		period = time.Now().Format("2006-01")
	}

	members, err := h.teamService.GetBoard(period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load performance board"})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *TeamHandler) GetMember(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	member, err := h.teamService.GetMember(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load record"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.teamService.DeleteMember(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
