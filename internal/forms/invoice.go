package forms

import (
	"estate_crm/internal/finance"
	"estate_crm/internal/models"
)

// LineItemForm is one invoice row as it leaves an input element: every
// numeric field is still a string.
type LineItemForm struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Rate        string `json:"rate"`
	TaxRate     string `json:"tax_rate"`
}

// ParseLineItem validates and coerces a line-item form. The amount is
// computed here, once, and fixed into the returned item.
func ParseLineItem(f LineItemForm) (models.DraftItem, Violations) {
	v := Violations{}

	desc := Required("description", f.Description, v)
	qty := ParsePositive("quantity", f.Quantity, v)
	rate := ParseNonNegative("rate", f.Rate, v)
	tax := ParseNonNegative("tax_rate", f.TaxRate, v)
	if tax > finance.MaxItemTaxRate {
		v.Add("tax_rate", "must be at most 28")
	}

	if !v.Empty() {
		return models.DraftItem{}, v
	}
	return models.DraftItem{
		Description: desc,
		Quantity:    qty,
		Unit:        f.Unit,
		Rate:        rate,
		TaxRate:     tax,
		Amount:      finance.LineAmount(qty, rate),
	}, v
}

// InvoiceMetaForm carries the dialog-level invoice fields. RelatedToTask
// gates TaskRef: when the toggle is off, any stale task id left in the form
// is discarded and nil goes on the wire.
type InvoiceMetaForm struct {
	ContractorID  uint   `json:"contractor_id"`
	InvoiceDate   string `json:"invoice_date"`
	Notes         string `json:"notes"`
	RelatedToTask bool   `json:"related_to_task"`
	TaskRef       *uint  `json:"task_ref"`
	SGSTRate      string `json:"sgst_rate"`
	CGSTRate      string `json:"cgst_rate"`
}

// InvoiceMeta is the typed result of parsing an InvoiceMetaForm.
type InvoiceMeta struct {
	ContractorID uint
	InvoiceDate  string // yyyy-mm-dd
	Notes        string
	TaskRef      *uint
	SGSTRate     float64
	CGSTRate     float64
}

// ParseInvoiceMeta coerces and validates the dialog-level fields.
func ParseInvoiceMeta(f InvoiceMetaForm) (InvoiceMeta, Violations) {
	v := Violations{}

	if f.ContractorID == 0 {
		v.Add("contractor_id", "required")
	}
	date := ParseDate("invoice_date", f.InvoiceDate, v)

	sgst := ParseNonNegative("sgst_rate", f.SGSTRate, v)
	if _, bad := v["sgst_rate"]; !bad && !finance.ValidGSTComponent(sgst) {
		v.Add("sgst_rate", "must be one of 0, 2.5, 6, 9, 14")
	}
	cgst := ParseNonNegative("cgst_rate", f.CGSTRate, v)
	if _, bad := v["cgst_rate"]; !bad && !finance.ValidGSTComponent(cgst) {
		v.Add("cgst_rate", "must be one of 0, 2.5, 6, 9, 14")
	}

	var taskRef *uint
	if f.RelatedToTask {
		if f.TaskRef == nil || *f.TaskRef == 0 {
			v.Add("task_ref", "required when related to a task")
		} else {
			taskRef = f.TaskRef
		}
	}

	if !v.Empty() {
		return InvoiceMeta{}, v
	}
	return InvoiceMeta{
		ContractorID: f.ContractorID,
		InvoiceDate:  FormatDate(date),
		Notes:        f.Notes,
		TaskRef:      taskRef,
		SGSTRate:     sgst,
		CGSTRate:     cgst,
	}, v
}

// PlotFinancialForm carries the open-plot money fields as strings.
type PlotFinancialForm struct {
	TotalAmount    string `json:"total_amount"`
	BookingAmount  string `json:"booking_amount"`
	AmountReceived string `json:"amount_received"`
}

// PlotFinancials is the typed result; BalanceAmount is derived here and
// always wins over anything the client sent.
type PlotFinancials struct {
	TotalAmount    float64
	BookingAmount  float64
	AmountReceived float64
	BalanceAmount  float64
}

func ParsePlotFinancials(f PlotFinancialForm) (PlotFinancials, Violations) {
	v := Violations{}
	total := ParseNonNegative("total_amount", f.TotalAmount, v)
	booking := ParseNonNegative("booking_amount", f.BookingAmount, v)
	received := ParseNonNegative("amount_received", f.AmountReceived, v)
	if !v.Empty() {
		return PlotFinancials{}, v
	}
	return PlotFinancials{
		TotalAmount:    total,
		BookingAmount:  booking,
		AmountReceived: received,
		BalanceAmount:  finance.Balance(total, received),
	}, v
}

// PerformanceForm carries one team member's numbers as strings.
type PerformanceForm struct {
	Sales  string `json:"sales"`
	Target string `json:"target"`
	Deals  string `json:"deals"`
	Leads  string `json:"leads"`
}

// Performance is the typed result with the conversion rate derived.
type Performance struct {
	Sales          float64
	Target         float64
	Deals          float64
	Leads          float64
	ConversionRate float64
}

func ParsePerformance(f PerformanceForm) (Performance, Violations) {
	v := Violations{}
	sales := ParseNonNegative("sales", f.Sales, v)
	target := ParseNonNegative("target", f.Target, v)
	deals := ParseNonNegative("deals", f.Deals, v)
	leads := ParseNonNegative("leads", f.Leads, v)
	if !v.Empty() {
		return Performance{}, v
	}
	return Performance{
		Sales:          sales,
		Target:         target,
		Deals:          deals,
		Leads:          leads,
		ConversionRate: finance.ConversionRate(deals, leads),
	}, v
}
