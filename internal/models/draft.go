package models

import "time"

// InvoiceDraft is the transient, Redis-held state of one invoice-entry
// dialog. It is owned by a single editing session, discarded on cancel or
// TTL expiry, and persisted only through an explicit submit.
type InvoiceDraft struct {
	SessionID    string      `json:"session_id"`
	OwnerID      uint        `json:"owner_id"`
	ContractorID uint        `json:"contractor_id"`
	InvoiceDate  string      `json:"invoice_date"` // yyyy-mm-dd
	Notes        string      `json:"notes"`
	TaskRef      *uint       `json:"task_ref"`
	SGSTRate     float64     `json:"sgst_rate"`
	CGSTRate     float64     `json:"cgst_rate"`
	Items        []DraftItem `json:"items"`
	NextItemID   int         `json:"next_item_id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DraftItem mirrors InvoiceItem before persistence. Amount is computed once
// when the row is appended; editing a row means remove and re-add.
type DraftItem struct {
	ItemID      int     `json:"item_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	TaxRate     float64 `json:"tax_rate"`
	Amount      float64 `json:"amount"`
}

// DraftSummary carries the derived totals returned with every draft read.
type DraftSummary struct {
	Subtotal   float64 `json:"subtotal"`
	SGSTAmount float64 `json:"sgst_amount"`
	CGSTAmount float64 `json:"cgst_amount"`
	Total      float64 `json:"total"`
}
