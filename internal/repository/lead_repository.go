package repository

import (
	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	GetByID(id uint) (*models.Lead, error)
	GetAll() ([]models.Lead, error)
	GetByStatus(status string) ([]models.Lead, error)
	GetByAssignee(userID uint) ([]models.Lead, error)
	CountByStatus(status string) (int64, error)
	Count() (int64, error)
	Update(lead *models.Lead) error
	Delete(id uint) error
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepository) GetByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) GetAll() ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Order("created_at desc").Find(&leads).Error
	return leads, err
}

func (r *leadRepository) GetByStatus(status string) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Where("status = ?", status).Find(&leads).Error
	return leads, err
}

func (r *leadRepository) GetByAssignee(userID uint) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Where("assigned_to = ?", userID).Find(&leads).Error
	return leads, err
}

func (r *leadRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *leadRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Count(&count).Error
	return count, err
}

func (r *leadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

func (r *leadRepository) Delete(id uint) error {
	return r.db.Delete(&models.Lead{}, id).Error
}
