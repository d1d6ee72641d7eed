// Package currency formats amounts for display in Vietnamese đồng.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatVND renders an amount with dot thousand-separators and the đồng
// sign, e.g. 15000000 -> "15.000.000 ₫". Fractions are rounded away; VNĐ has
// no minor unit in practice.
func FormatVND(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := strings.Join(groups, ".")
	if rounded.IsNegative() {
		formatted = "-" + formatted
	}
	return formatted + " ₫"
}
