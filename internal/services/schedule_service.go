package services

import (
	"log"
	"time"

	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type ScheduleService interface {
	CreateSchedule(schedule *models.Schedule) error
	GetScheduleByID(id uint) (*models.Schedule, error)
	GetSchedulesByAssignee(userID uint) ([]models.Schedule, error)
	GetUpcoming(window time.Duration) ([]models.Schedule, error)
	MarkNotified(id uint) error
	ProcessDue(window time.Duration) (int, error)
	UpdateSchedule(schedule *models.Schedule) error
	DeleteSchedule(id uint) error
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) CreateSchedule(schedule *models.Schedule) error {
	return s.scheduleRepo.Create(schedule)
}

func (s *scheduleService) GetScheduleByID(id uint) (*models.Schedule, error) {
	return s.scheduleRepo.GetByID(id)
}

func (s *scheduleService) GetSchedulesByAssignee(userID uint) ([]models.Schedule, error) {
	return s.scheduleRepo.GetByAssignee(userID)
}

func (s *scheduleService) GetUpcoming(window time.Duration) ([]models.Schedule, error) {
	now := time.Now()
	return s.scheduleRepo.GetUpcoming(now, now.Add(window))
}

func (s *scheduleService) MarkNotified(id uint) error {
	return s.scheduleRepo.MarkNotified(id)
}

// ProcessDue flags every entry falling due inside the window. Called
// periodically from the server loop; returns how many were flagged.
func (s *scheduleService) ProcessDue(window time.Duration) (int, error) {
	due, err := s.GetUpcoming(window)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, entry := range due {
		if err := s.scheduleRepo.MarkNotified(entry.ID); err != nil {
			log.Printf("Warning: failed to mark schedule %d notified: %v", entry.ID, err)
			continue
		}
		processed++
	}
	return processed, nil
}

func (s *scheduleService) UpdateSchedule(schedule *models.Schedule) error {
	return s.scheduleRepo.Update(schedule)
}

func (s *scheduleService) DeleteSchedule(id uint) error {
	return s.scheduleRepo.Delete(id)
}
