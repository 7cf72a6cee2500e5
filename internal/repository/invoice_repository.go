package repository

import (
	"gorm.io/gorm"

	"estate_crm/internal/models"
)

type InvoiceRepository interface {
	Create(invoice *models.Invoice, audit *models.InvoiceAudit) error
	GetByID(id uint) (*models.Invoice, error)
	GetAll() ([]models.Invoice, error)
	GetByContractor(contractorID uint) ([]models.Invoice, error)
	GetAudits(invoiceID uint) ([]models.InvoiceAudit, error)
	UpdateStatus(id uint, status string) error
	SumTotalsByStatus(status string) (float64, error)
	Count() (int64, error)
	Delete(id uint) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create persists the invoice, its items and the audit row in one
// transaction.
func (r *invoiceRepository) Create(invoice *models.Invoice, audit *models.InvoiceAudit) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		audit.InvoiceID = invoice.ID
		return tx.Create(audit).Error
	})
}

func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Preload("Items").Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetByContractor(contractorID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Preload("Items").Where("contractor_id = ?", contractorID).Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetAudits(invoiceID uint) ([]models.InvoiceAudit, error) {
	var audits []models.InvoiceAudit
	err := r.db.Where("invoice_id = ?", invoiceID).Order("submitted_at asc").Find(&audits).Error
	return audits, err
}

func (r *invoiceRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Invoice{}).Where("id = ?", id).Update("status", status).Error
}

func (r *invoiceRepository) SumTotalsByStatus(status string) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Invoice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

func (r *invoiceRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Invoice{}, id).Error
	})
}
