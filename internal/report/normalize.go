// Package report implements the monthly report engine: frequency
// normalization, row aggregation, category breakdown, account coverage
// and the fixed-width table rendering.
package report

import (
	"github.com/shopspring/decimal"

	"pfr/internal/core"
)

// weeklyMultiplier converts a weekly amount to its monthly equivalent.
// Historical outputs were produced with 4.28, not the exact 30/7 ratio;
// changing it would silently alter every existing report.
var weeklyMultiplier = decimal.RequireFromString("4.28")

// Normalize converts a transaction amount recorded at the given frequency
// into its monthly-equivalent magnitude. The result keeps the sign of the
// input; negation for expenses happens during aggregation.
func Normalize(amount decimal.Decimal, freq core.Frequency) decimal.Decimal {
	if freq == core.Weekly {
		return amount.Mul(weeklyMultiplier)
	}
	return amount
}
