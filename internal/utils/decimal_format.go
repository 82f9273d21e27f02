package utils

import "github.com/shopspring/decimal"

// ToFixedDecimal converts a float to a decimal rounded half away from zero to places digits.
// Example: 92.1135801 with places 6 returns 92.11358
func ToFixedDecimal(value float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(places)
}
