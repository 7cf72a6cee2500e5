package models

import (
	"time"

	"gorm.io/gorm"
)

type PlotListing struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	PlotNumber     string         `json:"plot_number" gorm:"unique;not null"`
	ProjectName    string         `json:"project_name" gorm:"not null"`
	Location       string         `json:"location"`
	AreaSqft       float64        `json:"area_sqft"`
	Facing         string         `json:"facing"`
	Status         string         `json:"status" gorm:"default:'open'"` // open, booked, registered, sold
	CustomerID     *uint          `json:"customer_id"`
	TotalAmount    float64        `json:"total_amount"`
	BookingAmount  float64        `json:"booking_amount"`
	AmountReceived float64        `json:"amount_received"`
	BalanceAmount  float64        `json:"balance_amount"` // derived, overwritten on every read and write
	CreatedBy      uint           `json:"created_by" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type PlotStatus string

const (
	PlotOpen       PlotStatus = "open"
	PlotBooked     PlotStatus = "booked"
	PlotRegistered PlotStatus = "registered"
	PlotSold       PlotStatus = "sold"
)
