package finance

import (
	"fmt"
	"strings"
)

// FormatAmount renders a value for display using Indian digit grouping
// (12,34,567.89) with the rupee glyph. The formatted string is presentation
// only; the canonical float64 always travels alongside it and is never
// parsed back from this output.
func FormatAmount(v float64) string {
	return "₹" + FormatNumber(v)
}

// FormatNumber applies Indian grouping without the currency glyph.
func FormatNumber(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	grouped := groupIndian(whole)
	if neg {
		grouped = "-" + grouped
	}
	return grouped + "." + frac
}

// groupIndian inserts separators after the last three digits, then every
// two: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}
