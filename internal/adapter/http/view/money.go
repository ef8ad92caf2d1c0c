package view

import (
	"fmt"

	"github.com/bellj/connect-api-examples/internal/square"
)

// FormatMoney renders minor units for display. Unknown currencies fall back
// to "12.50 XXX" rather than guessing a symbol.
func FormatMoney(m *square.Money) string {
	if m == nil {
		return ""
	}
	amount := m.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole, frac := amount/100, amount%100
	switch m.Currency {
	case "USD", "CAD", "AUD":
		return fmt.Sprintf("%s$%d.%02d", sign, whole, frac)
	case "EUR":
		return fmt.Sprintf("%s€%d.%02d", sign, whole, frac)
	case "GBP":
		return fmt.Sprintf("%s£%d.%02d", sign, whole, frac)
	default:
		return fmt.Sprintf("%s%d.%02d %s", sign, whole, frac, m.Currency)
	}
}
