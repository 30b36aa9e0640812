package alerts

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders aggregate totals as localized currency strings.
// The rendering is presentation only; the numeric value stays exact to the
// computed aggregate.
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

func NewCurrencyFormatter(code string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("unknown currency code %q: %w", code, err)
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(language.English),
		unit:    unit,
	}, nil
}

// Format renders v with the currency symbol and grouped digits.
func (f *CurrencyFormatter) Format(v float64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(v)))
}
