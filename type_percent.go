package coinfolio

import (
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 12.5 meaning 12.5%. Coin price changes and gains
// are Percents.
type Percent float64

// percentDecimals is the number of decimals percentages are shown with.
const percentDecimals = 2

// Equal reports whether p and q differ by less than 0.0001 points.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < 0.0001 }

// rounded returns p at the displayed precision, half away from zero.
func (p Percent) rounded() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Round(percentDecimals)
}

// String formats p like "12.50%".
func (p Percent) String() string {
	return p.rounded().StringFixed(percentDecimals) + "%"
}

// SignedString formats a change like "+12.50%" or "-3.10%", and "-" when it
// rounds to zero.
func (p Percent) SignedString() string {
	r := p.rounded()
	switch {
	case r.IsZero():
		return "-"
	case r.IsPositive():
		return "+" + r.StringFixed(percentDecimals) + "%"
	}
	return r.StringFixed(percentDecimals) + "%"
}
