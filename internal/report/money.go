// Package report renders payroll summaries for the console, CSV exports and PDF payslips.
package report

import (
	"github.com/shopspring/decimal"
)

// CurrencyPrefix is printed before every monetary value in the console report.
const CurrencyPrefix = "R$"

// Amount formats a value with exactly two decimal places.
// The shortest decimal form of the float is rounded half away from zero, so 1.005 prints as 1.01.
func Amount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// Money formats a value as a currency amount, e.g. "R$ 2644.50".
func Money(value float64) string {
	return CurrencyPrefix + " " + Amount(value)
}
