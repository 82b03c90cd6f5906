package booking

import "fmt"

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

var currencySymbols = map[Currency]string{
	CurrencyINR: "₹",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// NewCurrency fails closed on unrecognized codes so that a misconfigured
// rate never prices a stay in a silently substituted currency.
func NewCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsValid() {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

// Symbol returns the display symbol for the currency. Unknown codes fall
// back to the raw code itself; this is display-only behavior and does not
// bypass the NewCurrency validation used when pricing.
func (c Currency) Symbol() string {
	if sym, ok := currencySymbols[c]; ok {
		return sym
	}
	return string(c)
}

// FormatPrice renders an amount at the currency's minor-unit precision
// (two decimals for all supported currencies).
func FormatPrice(m Money, c Currency) string {
	amount := m.Amount()
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, c.Symbol(), amount/100, amount%100)
}
