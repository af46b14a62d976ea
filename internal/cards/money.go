package cards

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// valueFraction is the number of decimals shown for values, whatever the
// currency's own minor unit.
const valueFraction = 2

// FormatValue renders v with two decimals using the symbol and separators
// of the given ISO currency, falling back to USD for unknown codes.
func FormatValue(v decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := v.Shift(valueFraction).Round(0)
	if !minor.BigInt().IsInt64() {
		return cur.Grapheme + v.StringFixed(valueFraction)
	}
	f := money.NewFormatter(valueFraction, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(minor.IntPart())
}
