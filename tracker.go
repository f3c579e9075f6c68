package folio

import "github.com/shopspring/decimal"

// tracker holds the state of a single computation pass: for every holding, the
// entries appended so far in processing order.
//
// A tracker is never shared: ComputeUpdates creates one per call.
type tracker struct {
	entries         map[HoldingKey][]entry
	assetCurrencies map[HoldingKey]string
}

func newTracker() *tracker {
	return &tracker{
		entries:         make(map[HoldingKey][]entry),
		assetCurrencies: make(map[HoldingKey]string),
	}
}

// latest returns the quantity of the last entry appended for key, 0 if there is none.
func (p *tracker) latest(key HoldingKey) decimal.Decimal {
	entries := p.entries[key]
	if len(entries) == 0 {
		return decimal.Zero
	}
	return entries[len(entries)-1].quantity
}

// observe records the asset currency of a primary holding. Only the first
// observation counts.
func (p *tracker) observe(key HoldingKey, currency string) {
	if _, exists := p.assetCurrencies[key]; !exists {
		p.assetCurrencies[key] = currency
	}
	if _, exists := p.entries[key]; !exists {
		p.entries[key] = nil
	}
}

// append adds entries, in order, to their holdings.
func (p *tracker) append(entries []entry) {
	for _, e := range entries {
		p.entries[e.holding] = append(p.entries[e.holding], e)
	}
}

// assemble pads every entry into an Update and builds the per holding tables.
func (p *tracker) assemble() *Updates {
	u := &Updates{holdings: make(map[HoldingKey]*Holding, len(p.entries))}
	for key, entries := range p.entries {
		cur, ok := p.assetCurrencies[key]
		if !ok {
			// only ever used to pay fees or fund trades
			cur = key.Currency()
		}
		h := &Holding{key: key, assetCurrency: cur, updates: make([]Update, 0, len(entries))}
		for _, e := range entries {
			h.updates = append(h.updates, e.pad())
		}
		u.holdings[key] = h
	}
	return u
}
