package repository

import (
	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type PlotRepository interface {
	Create(plot *models.PlotListing) error
	GetByID(id uint) (*models.PlotListing, error)
	GetAll() ([]models.PlotListing, error)
	GetByStatus(status string) ([]models.PlotListing, error)
	CountByStatus(status string) (int64, error)
	Update(plot *models.PlotListing) error
	Delete(id uint) error
}

type plotRepository struct {
	db *gorm.DB
}

func NewPlotRepository(db *gorm.DB) PlotRepository {
	return &plotRepository{db: db}
}

func (r *plotRepository) Create(plot *models.PlotListing) error {
	return r.db.Create(plot).Error
}

func (r *plotRepository) GetByID(id uint) (*models.PlotListing, error) {
	var plot models.PlotListing
	err := r.db.First(&plot, id).Error
	if err != nil {
		return nil, err
	}
	return &plot, nil
}

func (r *plotRepository) GetAll() ([]models.PlotListing, error) {
	var plots []models.PlotListing
	err := r.db.Order("plot_number asc").Find(&plots).Error
	return plots, err
}

func (r *plotRepository) GetByStatus(status string) ([]models.PlotListing, error) {
	var plots []models.PlotListing
	err := r.db.Where("status = ?", status).Find(&plots).Error
	return plots, err
}

func (r *plotRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PlotListing{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *plotRepository) Update(plot *models.PlotListing) error {
	return r.db.Save(plot).Error
}

func (r *plotRepository) Delete(id uint) error {
	return r.db.Delete(&models.PlotListing{}, id).Error
}
