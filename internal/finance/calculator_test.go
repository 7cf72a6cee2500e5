package finance

import (
	"testing"

	"estate_crm/internal/models"
)

func TestLineAmount(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		rate     float64
		want     float64
	}{
		{"simple", 2, 500, 1000},
		{"fractional quantity", 2.5, 100, 250},
		{"zero rate", 10, 0, 0},
		{"negative quantity clamps", -1, 100, 0},
		{"negative rate clamps", 1, -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineAmount(tt.quantity, tt.rate); got != tt.want {
				t.Errorf("LineAmount(%v, %v) = %v, want %v", tt.quantity, tt.rate, got, tt.want)
			}
		})
	}
}

func TestSubtotal(t *testing.T) {
	items := []models.DraftItem{
		{Description: "Excavation", Quantity: 2, Rate: 500, Amount: 1000},
		{Description: "Labour", Quantity: 8, Rate: 150, Amount: 1200},
	}
	if got := Subtotal(items); got != 2200 {
		t.Errorf("Subtotal = %v, want 2200", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %v, want 0", got)
	}
	if got := Subtotal([]models.DraftItem{}); got != 0 {
		t.Errorf("Subtotal(empty) = %v, want 0", got)
	}
}

// Stored amounts are authoritative: a stale quantity/rate on the row must
// not change the subtotal.
func TestSubtotalTrustsStoredAmount(t *testing.T) {
	items := []models.DraftItem{{Quantity: 99, Rate: 99, Amount: 100}}
	if got := Subtotal(items); got != 100 {
		t.Errorf("Subtotal = %v, want 100", got)
	}
}

func TestTaxAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		rate     float64
		want     float64
	}{
		{"nine percent", 1000, 9, 90},
		{"zero rate", 1000, 0, 0},
		{"zero subtotal", 0, 18, 0},
		{"half slab", 1000, 2.5, 25},
		{"top component", 10000, 14, 1400},
		{"negative rate clamps", 1000, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxAmount(tt.subtotal, tt.rate); got != tt.want {
				t.Errorf("TaxAmount(%v, %v) = %v, want %v", tt.subtotal, tt.rate, got, tt.want)
			}
		})
	}
}

func TestTaxAmountMonotonicInRate(t *testing.T) {
	prev := 0.0
	for rate := 0.0; rate <= 100; rate += 0.5 {
		got := TaxAmount(5000, rate)
		if got < prev {
			t.Fatalf("TaxAmount decreased at rate %v: %v < %v", rate, got, prev)
		}
		prev = got
	}
}

func TestTotal(t *testing.T) {
	if got := Total(1000, 90, 90); got != 1180 {
		t.Errorf("Total = %v, want 1180", got)
	}
	if got := Total(500); got != 500 {
		t.Errorf("Total with no taxes = %v, want 500", got)
	}
	if got := Total(1000, 90, 90); got < 1000 {
		t.Errorf("Total %v fell below subtotal", got)
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		received float64
		want     float64
	}{
		{"partial payment", 1000, 300, 700},
		{"exact payment", 1000, 1000, 0},
		{"overpayment clamps", 1000000, 1200000, 0},
		{"nothing received", 500, 0, 500},
		{"both zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balance(tt.total, tt.received)
			if got != tt.want {
				t.Errorf("Balance(%v, %v) = %v, want %v", tt.total, tt.received, got, tt.want)
			}
			if got < 0 {
				t.Errorf("Balance went negative: %v", got)
			}
		})
	}
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name  string
		deals float64
		leads float64
		want  float64
	}{
		{"half converted", 5, 10, 50},
		{"zero leads", 7, 0, 0},
		{"both zero", 0, 0, 0},
		{"zero deals", 0, 20, 0},
		{"rounds to two decimals", 1, 3, 33.33},
		{"over one hundred percent", 12, 10, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConversionRate(tt.deals, tt.leads); got != tt.want {
				t.Errorf("ConversionRate(%v, %v) = %v, want %v", tt.deals, tt.leads, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	draft := &models.InvoiceDraft{
		SGSTRate: 9,
		CGSTRate: 9,
		Items: []models.DraftItem{
			{Description: "Painting", Quantity: 2, Rate: 500, TaxRate: 18, Amount: 1000},
		},
	}
	got := Summarize(draft)
	if got.Subtotal != 1000 || got.SGSTAmount != 90 || got.CGSTAmount != 90 || got.Total != 1180 {
		t.Errorf("Summarize = %+v, want subtotal 1000, sgst 90, cgst 90, total 1180", got)
	}
}

func TestSummarizeTopSlabs(t *testing.T) {
	draft := &models.InvoiceDraft{
		SGSTRate: 14,
		CGSTRate: 14,
		Items: []models.DraftItem{
			{Description: "Structural work", Quantity: 1, Rate: 10000, Amount: 10000},
		},
	}
	got := Summarize(draft)
	if got.Total != 12800 {
		t.Errorf("Summarize total = %v, want 12800", got.Total)
	}
}

func TestSummarizeEmptyDraft(t *testing.T) {
	got := Summarize(&models.InvoiceDraft{SGSTRate: 9, CGSTRate: 9})
	if got.Subtotal != 0 || got.SGSTAmount != 0 || got.CGSTAmount != 0 || got.Total != 0 {
		t.Errorf("Summarize on empty draft = %+v, want all zero", got)
	}
}

// Summarize must not mutate the draft: two calls on the same input give the
// same answer.
func TestSummarizeIdempotent(t *testing.T) {
	draft := &models.InvoiceDraft{
		SGSTRate: 6,
		CGSTRate: 6,
		Items: []models.DraftItem{
			{Quantity: 3, Rate: 333.33, Amount: 999.99},
			{Quantity: 1, Rate: 50, Amount: 50},
		},
	}
	first := Summarize(draft)
	second := Summarize(draft)
	if first != second {
		t.Errorf("Summarize not idempotent: %+v then %+v", first, second)
	}
	if draft.Items[0].Amount != 999.99 {
		t.Errorf("Summarize mutated item amount: %v", draft.Items[0].Amount)
	}
}

func TestValidGSTComponent(t *testing.T) {
	for _, r := range []float64{0, 2.5, 6, 9, 14} {
		if !ValidGSTComponent(r) {
			t.Errorf("ValidGSTComponent(%v) = false, want true", r)
		}
	}
	for _, r := range []float64{-1, 5, 12, 14.5, 18, 28} {
		if ValidGSTComponent(r) {
			t.Errorf("ValidGSTComponent(%v) = true, want false", r)
		}
	}
}

func TestValidItemTaxRate(t *testing.T) {
	for _, r := range []float64{0, 5, 18, 28} {
		if !ValidItemTaxRate(r) {
			t.Errorf("ValidItemTaxRate(%v) = false, want true", r)
		}
	}
	for _, r := range []float64{-0.1, 28.01, 100} {
		if ValidItemTaxRate(r) {
			t.Errorf("ValidItemTaxRate(%v) = true, want false", r)
		}
	}
}
