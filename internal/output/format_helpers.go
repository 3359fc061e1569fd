package output

import (
	"github.com/shopspring/decimal"

	money "github.com/sipgo/investment-calculator/pkg/decimal"
)

// CurrencySymbol is the symbol prepended to monetary output. The engine is
// symbol-agnostic; this is purely presentation.
var CurrencySymbol = "₹"

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format(CurrencySymbol)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
