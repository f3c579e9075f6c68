package folio

import (
	"iter"
	"maps"
	"slices"

	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// Update is one row of a holding's history: the state of the holding right
// after a transaction touched it.
type Update struct {
	Date         date.Date
	Quantity     decimal.Decimal     // running balance after the transaction
	Price        decimal.NullDecimal // trade price, only on asset rows of Purchase and Sale
	PriceFactor  decimal.Decimal
	ExchangeRate decimal.Decimal
	BaseCurrency string // settlement currency, "" if none
}

// entry is a partial Update produced by a rule. Fields left invalid (or empty)
// get their default when the entry is padded.
type entry struct {
	holding      HoldingKey
	on           date.Date
	quantity     decimal.Decimal
	price        decimal.NullDecimal
	priceFactor  decimal.NullDecimal
	exchangeRate decimal.NullDecimal
	baseCurrency string
}

// Update column defaults.
var (
	defaultPrice        = decimal.NullDecimal{}
	defaultPriceFactor  = one
	defaultExchangeRate = one
)

// pad builds the full Update record out of e.
//
// An absent price and a price left unset by the rule are the same thing: both
// end up as defaultPrice.
func (e entry) pad() Update {
	u := Update{
		Date:         e.on,
		Quantity:     e.quantity,
		Price:        defaultPrice,
		PriceFactor:  defaultPriceFactor,
		ExchangeRate: defaultExchangeRate,
		BaseCurrency: e.baseCurrency,
	}
	if e.price.Valid {
		u.Price = e.price
	}
	if e.priceFactor.Valid {
		u.PriceFactor = e.priceFactor.Decimal
	}
	if e.exchangeRate.Valid {
		u.ExchangeRate = e.exchangeRate.Decimal
	}
	return u
}

// Holding is the materialized history of a single holding.
type Holding struct {
	key           HoldingKey
	assetCurrency string
	updates       []Update // in processing order
}

// Key returns the holding key.
func (h *Holding) Key() HoldingKey { return h.key }

// AssetCurrency returns the currency the holding is denominated in. It is fixed
// by the first transaction whose primary holding is h.
func (h *Holding) AssetCurrency() string { return h.assetCurrency }

// Updates returns the holding's update records in chronological order.
func (h *Holding) Updates() []Update { return slices.Clone(h.updates) }

// Len returns the number of update records.
func (h *Holding) Len() int { return len(h.updates) }

// Latest returns the last update record, and false if there is none.
func (h *Holding) Latest() (Update, bool) {
	if len(h.updates) == 0 {
		return Update{}, false
	}
	return h.updates[len(h.updates)-1], true
}

// Daily returns the end of day balance of the holding for every day it was updated.
func (h *Holding) Daily() *date.History[decimal.Decimal] {
	history := new(date.History[decimal.Decimal])
	for _, u := range h.updates {
		// Several updates on the same day: the last one wins.
		history.Append(u.Date, u.Quantity)
	}
	return history
}

// QuantityOn returns the balance of the holding at the end of day on. It is zero
// before the first update.
func (h *Holding) QuantityOn(on date.Date) decimal.Decimal {
	q, _ := h.Daily().ValueAsOf(on)
	return q
}

// Updates maps every holding touched by a transaction list to its history.
type Updates struct {
	holdings map[HoldingKey]*Holding
}

// Len returns the number of holdings.
func (u *Updates) Len() int { return len(u.holdings) }

// Holding returns the holding for key, or nil if no transaction touched it.
func (u *Updates) Holding(key HoldingKey) *Holding { return u.holdings[key] }

// Keys returns the holding keys in sorted order.
func (u *Updates) Keys() []HoldingKey { return slices.Sorted(maps.Keys(u.holdings)) }

// All iterates over holdings sorted by key.
func (u *Updates) All() iter.Seq2[HoldingKey, *Holding] {
	return func(yield func(HoldingKey, *Holding) bool) {
		for _, k := range u.Keys() {
			if !yield(k, u.holdings[k]) {
				return
			}
		}
	}
}

// Filter returns the updates of holding inside r. An empty holding keeps every
// holding, a zero r keeps every day. Holdings left without updates are dropped.
func (u *Updates) Filter(holding HoldingKey, r date.Range) *Updates {
	filtered := &Updates{holdings: make(map[HoldingKey]*Holding)}
	for key, h := range u.holdings {
		if holding != "" && key != holding {
			continue
		}
		var updates []Update
		for _, update := range h.updates {
			if r.Contains(update.Date) {
				updates = append(updates, update)
			}
		}
		if len(updates) > 0 {
			filtered.holdings[key] = &Holding{key: key, assetCurrency: h.assetCurrency, updates: updates}
		}
	}
	return filtered
}
