package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type CreateScheduleRequest struct {
	Title         string `json:"title" binding:"required"`
	ScheduleType  string `json:"schedule_type" binding:"required"`
	ScheduledTime string `json:"scheduled_time" binding:"required"`
	LeadID        *uint  `json:"lead_id"`
	PlotID        *uint  `json:"plot_id"`
	AssignedTo    uint   `json:"assigned_to" binding:"required"`
	Notes         string `json:"notes"`
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	switch models.ScheduleType(req.ScheduleType) {
	case models.ScheduleSiteVisit, models.ScheduleMeeting, models.ScheduleFollowUp:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown schedule type"})
		return
	}

	violations := forms.Violations{}
	scheduledTime := forms.ParseDate("scheduled_time", req.ScheduledTime, violations)
	if !violations.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
		return
	}

	schedule := &models.Schedule{
		Title:         req.Title,
		ScheduleType:  req.ScheduleType,
		ScheduledTime: scheduledTime,
		LeadID:        req.LeadID,
		PlotID:        req.PlotID,
		AssignedTo:    req.AssignedTo,
		Notes:         req.Notes,
		CreatedBy:     currentUserID(c),
	}
	if err := h.scheduleService.CreateSchedule(schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	schedule, err := h.scheduleService.GetScheduleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) GetMySchedules(c *gin.Context) {
	schedules, err := h.scheduleService.GetSchedulesByAssignee(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) GetUpcoming(c *gin.Context) {
	window := 24 * time.Hour
	if hours := c.Query("hours"); hours != "" {
		violations := forms.Violations{}
		parsed := forms.ParsePositive("hours", hours, violations)
		if !violations.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
			return
		}
		window = time.Duration(parsed * float64(time.Hour))
	}

	schedules, err := h.scheduleService.GetUpcoming(window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) MarkNotified(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.scheduleService.MarkNotified(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "notified"})
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.scheduleService.DeleteSchedule(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
