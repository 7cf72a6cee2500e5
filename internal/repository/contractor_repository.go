package repository

import (
	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type ContractorRepository interface {
	Create(contractor *models.Contractor) error
	GetByID(id uint) (*models.Contractor, error)
	GetAll() ([]models.Contractor, error)
	GetActive() ([]models.Contractor, error)
	Update(contractor *models.Contractor) error
	Delete(id uint) error
}

type contractorRepository struct {
	db *gorm.DB
}

func NewContractorRepository(db *gorm.DB) ContractorRepository {
	return &contractorRepository{db: db}
}

func (r *contractorRepository) Create(contractor *models.Contractor) error {
	return r.db.Create(contractor).Error
}

func (r *contractorRepository) GetByID(id uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.First(&contractor, id).Error
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

func (r *contractorRepository) GetAll() ([]models.Contractor, error) {
	var contractors []models.Contractor
	err := r.db.Find(&contractors).Error
	return contractors, err
}

func (r *contractorRepository) GetActive() ([]models.Contractor, error) {
	var contractors []models.Contractor
	err := r.db.Where("is_active = ?", true).Find(&contractors).Error
	return contractors, err
}

func (r *contractorRepository) Update(contractor *models.Contractor) error {
	return r.db.Save(contractor).Error
}

func (r *contractorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contractor{}, id).Error
}
