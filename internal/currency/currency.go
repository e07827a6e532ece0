// Package currency formats monetary amounts for display according to the
// user's locale and a wallet's currency code.
package currency

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Masked replaces amounts when balances are hidden.
const Masked = "••••"

// Formatter renders amounts in a fixed locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given BCP 47 locale.
// Unparseable locales fall back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders the amount with the symbol of the given ISO 4217 code.
// An unknown code degrades to a plain decimal rather than failing.
func (f *Formatter) Format(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return f.printer.Sprintf("%.2f", amount)
	}
	return f.printer.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// FormatOrMask renders the amount unless balances are hidden.
func (f *Formatter) FormatOrMask(amount float64, code string, hidden bool) string {
	if hidden {
		return Masked
	}
	return f.Format(amount, code)
}
