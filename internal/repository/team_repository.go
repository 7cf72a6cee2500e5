package repository

import (
	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type TeamRepository interface {
	Create(member *models.TeamMember) error
	GetByID(id uint) (*models.TeamMember, error)
	GetByUserAndPeriod(userID uint, period string) (*models.TeamMember, error)
	GetByPeriod(period string) ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *teamRepository) GetByID(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) GetByUserAndPeriod(userID uint, period string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.Where("user_id = ? AND period = ?", userID, period).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) GetByPeriod(period string) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("period = ?", period).Find(&members).Error
	return members, err
}

func (r *teamRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

func (r *teamRepository) Delete(id uint) error {
	return r.db.Delete(&models.TeamMember{}, id).Error
}
