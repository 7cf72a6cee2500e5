package models

import (
	"time"

	"gorm.io/gorm"
)

type KanbanTask struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	AssignedTo  uint           `json:"assigned_to" gorm:"not null;index"`
	Status      string         `json:"status" gorm:"default:'todo'"`     // todo, in_progress, review, done
	Priority    string         `json:"priority" gorm:"default:'medium'"` // low, medium, high, urgent
	DueDate     *time.Time     `json:"due_date"`
	PlotID      *uint          `json:"plot_id"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedBy   uint           `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskActivity records every board move, one row per transition.
type TaskActivity struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TaskID     uint      `json:"task_id" gorm:"not null;index"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	MovedBy    uint      `json:"moved_by"`
	MovedAt    time.Time `json:"moved_at"`
	CreatedAt  time.Time `json:"created_at"`
}
