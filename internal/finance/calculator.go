// Package finance holds the derived-value computations shared by the
// invoice, plot and team screens: line amounts, GST totals, balance and
// conversion rate. Everything here is pure and stateless; rounding happens
// only at the display edge, never inside the arithmetic.
package finance

import (
	"math"

	"estate_crm/internal/models"
)

// LineAmount returns quantity * rate. The result is fixed into the line
// item when it is added; later edits go through remove and re-add.
func LineAmount(quantity, rate float64) float64 {
	if quantity < 0 || rate < 0 {
		return 0
	}
	return quantity * rate
}

// Subtotal sums the stored amounts of the draft items. An empty list yields
// zero. Stored amounts are trusted; quantity and rate are not re-multiplied.
func Subtotal(items []models.DraftItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}

// ItemSubtotal is Subtotal over persisted invoice items.
func ItemSubtotal(items []models.InvoiceItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}

// TaxAmount applies a percentage rate to a subtotal. Rate bounds are checked
// at the forms boundary; negative inputs clamp to zero here as a backstop.
func TaxAmount(subtotal, ratePercent float64) float64 {
	if subtotal < 0 || ratePercent < 0 {
		return 0
	}
	return subtotal * ratePercent / 100
}

// Total adds tax amounts onto a subtotal.
func Total(subtotal float64, taxAmounts ...float64) float64 {
	total := subtotal
	for _, t := range taxAmounts {
		total += t
	}
	return total
}

// Balance is the remaining amount owed, floored at zero. Overpayment never
// shows a negative balance.
func Balance(total, received float64) float64 {
	return math.Max(total-received, 0)
}

// ConversionRate is deals over leads as a percentage, rounded to two
// decimals. Zero leads yields zero rather than NaN.
func ConversionRate(deals, leads float64) float64 {
	if leads <= 0 {
		return 0
	}
	return Round2(deals / leads * 100)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize computes the full derived summary for a draft: subtotal,
// per-component GST amounts and grand total.
func Summarize(draft *models.InvoiceDraft) models.DraftSummary {
	subtotal := Subtotal(draft.Items)
	sgst := TaxAmount(subtotal, draft.SGSTRate)
	cgst := TaxAmount(subtotal, draft.CGSTRate)
	return models.DraftSummary{
		Subtotal:   subtotal,
		SGSTAmount: sgst,
		CGSTAmount: cgst,
		Total:      Total(subtotal, sgst, cgst),
	}
}
