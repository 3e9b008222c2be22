package repository

import (
	"os"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// decToString renders a decimal at a fixed scale for storage as a DynamoDB
// number string, so equal values always serialize identically.
func decToString(d decimal.Decimal, scale int32) string {
	return d.Round(scale).StringFixed(scale)
}

func stringToDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
