package usecase

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var esPrinter = message.NewPrinter(language.Spanish)

// FormatCOP formatea un valor en pesos con separador de miles en español: "$ 15.000".
// Los centavos solo se muestran si existen.
func FormatCOP(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.Equal(rounded.Truncate(0)) {
		return esPrinter.Sprintf("$ %d", rounded.IntPart())
	}
	f, _ := rounded.Float64()
	return esPrinter.Sprintf("$ %.2f", f)
}
