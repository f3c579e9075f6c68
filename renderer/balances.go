package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// formatAmount formats q as an amount of currency code. Unknown currencies
// fall back to the plain decimal followed by the code.
func formatAmount(q decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return q.String() + " " + code
	}
	minor := q.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// RenderBalances renders the balance of every holding at the end of day on.
//
// Holdings first updated after on are left out. Cash balances are formatted
// in their currency.
func RenderBalances(u *folio.Updates, on date.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Balances on %s\n\n", on)

	rows := 0
	for key, h := range u.All() {
		q, ok := h.Daily().ValueAsOf(on)
		if !ok {
			continue
		}
		if rows == 0 {
			b.WriteString("| Holding | Asset Currency | Balance |\n")
			b.WriteString("|---|---|--:|\n")
		}
		rows++

		balance := q.String()
		if key.IsCash() {
			balance = formatAmount(q, key.Currency())
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", key, h.AssetCurrency(), balance)
	}
	if rows == 0 {
		b.WriteString("No holdings.\n")
	}
	return b.String()
}
