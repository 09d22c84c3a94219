package utils

import "github.com/shopspring/decimal"

// FormatBRL renders an amount the way the restaurant prints it: "R$ 12.50".
func FormatBRL(amount float64) string {
	return "R$ " + decimal.NewFromFloat(amount).StringFixed(2)
}
