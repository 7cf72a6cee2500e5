package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember is one row of the sales-performance board. ConversionRate is
// derived from Deals and Leads and overwritten on every read and write.
type TeamMember struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	Period         string         `json:"period" gorm:"type:varchar(7)"` // YYYY-MM
	Sales          float64        `json:"sales"`
	Target         float64        `json:"target"`
	Deals          float64        `json:"deals"`
	Leads          float64        `json:"leads"`
	ConversionRate float64        `json:"conversion_rate"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
