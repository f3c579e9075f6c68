package folio

import (
	"github.com/etnz/folio/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// dec is a helper for test to create decimals from const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// day is a helper for test to create dates from const.
func day(s string) date.Date { return date.MustParse(s) }

// compareValues makes cmp able to compare decimals and dates.
var compareValues = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// quantities returns the running quantities of a holding, as strings.
func quantities(h *Holding) []string {
	if h == nil {
		return nil
	}
	var q []string
	for _, u := range h.Updates() {
		q = append(q, u.Quantity.String())
	}
	return q
}
