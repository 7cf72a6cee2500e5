package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	PhoneNumber string         `json:"phone_number" gorm:"not null"`
	Email       string         `json:"email"`
	Address     string         `json:"address" gorm:"type:text"`
	LeadID      *uint          `json:"lead_id"` // set when converted from a lead
	CreatedBy   uint           `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Contractor struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	CompanyName  string         `json:"company_name"`
	PhoneNumber  string         `json:"phone_number" gorm:"not null"`
	Email        string         `json:"email"`
	GSTIN        string         `json:"gstin"` // GST registration number, free-form
	Specialty    string         `json:"specialty"` // plumbing, electrical, civil, landscaping
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedBy    uint           `json:"created_by" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
