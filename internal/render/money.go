package render

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats an amount as US dollars, e.g. "$1,234.56".
func Money(amount float64) string {
	cents := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

// SignedMoney is Money with an explicit "+" for non-negative amounts.
func SignedMoney(amount float64) string {
	if amount >= 0 {
		return "+" + Money(amount)
	}
	return Money(amount)
}

// Signed formats a plain change such as "+20.00" or "-4.82".
func Signed(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}
