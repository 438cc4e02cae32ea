package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount in minor currency units for display, e.g.
// Format(1234, "usd") == "12.34 USD". Aggregation itself never leaves
// integer arithmetic; this conversion exists only at the presentation edge.
func Format(minor int64, currency string) string {
	if currency == "" {
		currency = "usd"
	}
	return fmt.Sprintf("%s %s", decimal.New(minor, -2).StringFixed(2), strings.ToUpper(currency))
}
