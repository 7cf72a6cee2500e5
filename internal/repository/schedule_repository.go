package repository

import (
	"time"

	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type ScheduleRepository interface {
	Create(schedule *models.Schedule) error
	GetByID(id uint) (*models.Schedule, error)
	GetByAssignee(userID uint) ([]models.Schedule, error)
	GetUpcoming(from, to time.Time) ([]models.Schedule, error)
	MarkNotified(id uint) error
	Update(schedule *models.Schedule) error
	Delete(id uint) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *scheduleRepository) GetByID(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.First(&schedule, id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetByAssignee(userID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Where("assigned_to = ?", userID).Order("scheduled_time asc").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) GetUpcoming(from, to time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Where("scheduled_time BETWEEN ? AND ? AND notified = ?", from, to, false).
		Order("scheduled_time asc").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) MarkNotified(id uint) error {
	return r.db.Model(&models.Schedule{}).Where("id = ?", id).Update("notified", true).Error
}

func (r *scheduleRepository) Update(schedule *models.Schedule) error {
	return r.db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Schedule{}, id).Error
}
