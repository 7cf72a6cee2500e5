package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/models"
	"estate_crm/internal/services"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssignedTo  uint       `json:"assigned_to" binding:"required"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	PlotID      *uint      `json:"plot_id"`
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task := &models.KanbanTask{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		PlotID:      req.PlotID,
		Status:      string(models.TaskTodo),
		CreatedBy:   currentUserID(c),
	}
	if task.Priority == "" {
		task.Priority = string(models.PriorityMedium)
	}

	if err := h.taskService.CreateTask(task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetBoard(c *gin.Context) {
	board, err := h.taskService.GetBoard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	task, err := h.taskService.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	tasks, err := h.taskService.GetTasksByAssignee(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type MoveTaskRequest struct {
	Status string `json:"status" binding:"required"`
}

// MoveTask shifts a card between columns. The response carries the previous
// status so a client that moved the card optimistically can put it back if
// anything downstream fails.
func (h *TaskHandler) MoveTask(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.taskService.MoveTask(id, req.Status, currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TaskHandler) GetActivity(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	activity, err := h.taskService.GetActivity(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
