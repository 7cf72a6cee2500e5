package repository

import (
	"time"

	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type TaskRepository interface {
	Create(task *models.KanbanTask) error
	GetByID(id uint) (*models.KanbanTask, error)
	GetByAssignee(userID uint) ([]models.KanbanTask, error)
	GetByStatus(status string) ([]models.KanbanTask, error)
	GetAll() ([]models.KanbanTask, error)
	Update(task *models.KanbanTask) error
	Delete(id uint) error
	MoveStatus(taskID uint, fromStatus, toStatus string, movedBy uint) error
	GetActivity(taskID uint) ([]models.TaskActivity, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *models.KanbanTask) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetByID(id uint) (*models.KanbanTask, error) {
	var task models.KanbanTask
	err := r.db.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByAssignee(userID uint) ([]models.KanbanTask, error) {
	var tasks []models.KanbanTask
	err := r.db.Where("assigned_to = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) GetByStatus(status string) ([]models.KanbanTask, error) {
	var tasks []models.KanbanTask
	err := r.db.Where("status = ?", status).Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) GetAll() ([]models.KanbanTask, error) {
	var tasks []models.KanbanTask
	err := r.db.Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) Update(task *models.KanbanTask) error {
	return r.db.Save(task).Error
}

func (r *taskRepository) Delete(id uint) error {
	return r.db.Delete(&models.KanbanTask{}, id).Error
}

// MoveStatus updates the task column and records the transition in one
// transaction.
func (r *taskRepository) MoveStatus(taskID uint, fromStatus, toStatus string, movedBy uint) error {
	now := time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":     toStatus,
			"updated_at": now,
		}
		if toStatus == string(models.TaskDone) {
			updates["completed_at"] = now
		}
		if err := tx.Model(&models.KanbanTask{}).Where("id = ?", taskID).Updates(updates).Error; err != nil {
			return err
		}

		activity := &models.TaskActivity{
			TaskID:     taskID,
			FromStatus: fromStatus,
			ToStatus:   toStatus,
			MovedBy:    movedBy,
			MovedAt:    now,
		}
		return tx.Create(activity).Error
	})
}

func (r *taskRepository) GetActivity(taskID uint) ([]models.TaskActivity, error) {
	var activity []models.TaskActivity
	err := r.db.Where("task_id = ?", taskID).Order("moved_at asc").Find(&activity).Error
	return activity, err
}
