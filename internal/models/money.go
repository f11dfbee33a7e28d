package models

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits kept for prices and percentages,
// matching the numeric(10,2) and numeric(5,2) columns.
const Scale = 2

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(Scale).InexactFloat64()
}
