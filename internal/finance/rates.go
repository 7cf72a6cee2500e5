package finance

// GST slabs used on invoices. SGST and CGST are picked independently from
// the same discrete set; per-item tax is any value up to the top combined
// slab.
const (
	MaxItemTaxRate  = 28.0
	MaxGSTComponent = 14.0
)

// GSTComponentRates are the selectable SGST/CGST values.
var GSTComponentRates = []float64{0, 2.5, 6, 9, 14}

// ValidGSTComponent reports whether rate is one of the selectable SGST/CGST
// slabs.
func ValidGSTComponent(rate float64) bool {
	for _, r := range GSTComponentRates {
		if rate == r {
			return true
		}
	}
	return false
}

// ValidItemTaxRate reports whether a per-item tax rate is inside [0, 28].
func ValidItemTaxRate(rate float64) bool {
	return rate >= 0 && rate <= MaxItemTaxRate
}
