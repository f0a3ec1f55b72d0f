// internal/pricing/pricing.go
//
// Bet-cost computation. The total cost of a run is a pure function of the
// number of output games and the fixed unit price; no side effects.

package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultUnitPrice is the price of a single game in BRL.
var DefaultUnitPrice = decimal.NewFromInt(5)

// TotalCost returns the cost of betting count games at the given unit price.
func TotalCost(count int, unit decimal.Decimal) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(count)))
}

// FormatBRL renders a value the way the betting slip shows it: "R$ 30,00".
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}
