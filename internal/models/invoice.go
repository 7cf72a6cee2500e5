package models

import (
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	InvoiceNumber string         `json:"invoice_number" gorm:"unique;not null"`
	ContractorID  uint           `json:"contractor_id" gorm:"not null;index"`
	InvoiceDate   time.Time      `json:"invoice_date" gorm:"not null"`
	Notes         string         `json:"notes" gorm:"type:text"`
	TaskRef       *uint          `json:"task_ref"` // nil when the invoice is not tied to a kanban task
	Status        string         `json:"status" gorm:"default:'pending'"` // pending, approved, paid, rejected
	Subtotal      float64        `json:"subtotal" gorm:"not null"`
	SGSTRate      float64        `json:"sgst_rate"`
	SGSTAmount    float64        `json:"sgst_amount"`
	CGSTRate      float64        `json:"cgst_rate"`
	CGSTAmount    float64        `json:"cgst_amount"`
	TotalAmount   float64        `json:"total_amount" gorm:"not null"`
	Items         []InvoiceItem  `json:"items" gorm:"foreignKey:InvoiceID"`
	CreatedBy     uint           `json:"created_by" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type InvoiceItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	InvoiceID   uint           `json:"invoice_id" gorm:"not null;index"`
	Description string         `json:"description" gorm:"not null"`
	Quantity    float64        `json:"quantity" gorm:"not null"`
	Unit        string         `json:"unit"` // free-form label: "Job", "Hours", "Sqft"
	Rate        float64        `json:"rate" gorm:"not null"`
	TaxRate     float64        `json:"tax_rate"`
	Amount      float64        `json:"amount" gorm:"not null"` // fixed when the line was added, never recomputed
	Position    int            `json:"position"`               // insertion order, display only
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "pending"
	InvoiceApproved InvoiceStatus = "approved"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceRejected InvoiceStatus = "rejected"
)

// InvoiceAudit records the inputs and computed result of every invoice
// submission, one row per submit.
type InvoiceAudit struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	InvoiceID    uint      `json:"invoice_id" gorm:"not null;index"`
	ItemCount    int       `json:"item_count"`
	Subtotal     float64   `json:"subtotal"`
	SGSTRate     float64   `json:"sgst_rate"`
	CGSTRate     float64   `json:"cgst_rate"`
	ComputedTotal float64  `json:"computed_total"`
	SubmittedBy  uint      `json:"submitted_by"`
	SubmittedAt  time.Time `json:"submitted_at"`
	CreatedAt    time.Time `json:"created_at"`
}
