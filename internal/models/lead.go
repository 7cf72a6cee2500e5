package models

import (
	"time"

	"gorm.io/gorm"
)

type Lead struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	PhoneNumber string         `json:"phone_number" gorm:"not null"`
	Email       string         `json:"email"`
	Source      string         `json:"source"` // walk_in, referral, website, campaign
	Status      string         `json:"status" gorm:"default:'new'"` // new, contacted, site_visit, negotiation, won, lost
	Budget      float64        `json:"budget"`
	AssignedTo  *uint          `json:"assigned_to" gorm:"index"`
	Notes       string         `json:"notes" gorm:"type:text"`
	CreatedBy   uint           `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type LeadStatus string

const (
	LeadNew         LeadStatus = "new"
	LeadContacted   LeadStatus = "contacted"
	LeadSiteVisit   LeadStatus = "site_visit"
	LeadNegotiation LeadStatus = "negotiation"
	LeadWon         LeadStatus = "won"
	LeadLost        LeadStatus = "lost"
)
