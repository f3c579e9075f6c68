package folio

import "github.com/shopspring/decimal"

var minusOne = decimal.NewFromInt(-1)

// derive returns the entries produced by tx. Quantities are computed from the
// balances before any of tx's own entries are appended.
func (p *tracker) derive(tx Transaction) ([]entry, error) {
	if !tx.Type.Known() {
		return nil, &UnknownTransactionTypeError{Type: tx.Type}
	}
	if tx.Fee.IsPositive() && tx.FeeCurrency == "" {
		return nil, ErrMissingFeeCurrency
	}

	switch tx.Type {
	case Deposit, Payment:
		return p.cashEntries(tx, one), nil
	case Withdrawal, Fee:
		// A Fee transaction carrying a Fee field pays it twice: once as its
		// Quantity, once as its fee.
		return p.cashEntries(tx, minusOne), nil
	case Purchase:
		return p.tradeEntries(tx, one)
	case Sale:
		return p.tradeEntries(tx, minusOne)
	}
	return nil, &UnknownTransactionTypeError{Type: tx.Type}
}

// cashEntries moves tx.Quantity in or out (sign) of the primary cash holding.
//
// A fee in the same currency is netted in the same entry, otherwise it is
// charged to its own holding.
func (p *tracker) cashEntries(tx Transaction, sign decimal.Decimal) []entry {
	asset := tx.AssetHolding()
	entries := make([]entry, 0, 2)

	netFee := decimal.Zero
	if fee, ok := tx.FeeHolding(); ok {
		if fee == asset {
			netFee = tx.Fee
		} else {
			entries = append(entries, entry{
				holding:  fee,
				on:       tx.Date,
				quantity: p.latest(fee).Sub(tx.Fee),
			})
		}
	}

	return append(entries, entry{
		holding:  asset,
		on:       tx.Date,
		quantity: p.latest(asset).Add(tx.Quantity.Mul(sign)).Sub(netFee),
	})
}

// tradeEntries moves tx.Quantity in (sign=1) or out (sign=-1) of the asset
// holding, and the cost the other way on the base holding.
//
// Without a base currency the trade is unfunded: only the asset and the fee
// move.
func (p *tracker) tradeEntries(tx Transaction, sign decimal.Decimal) ([]entry, error) {
	if !tx.Price.Valid {
		return nil, ErrMissingPrice
	}
	asset := tx.AssetHolding()
	rate := tx.EffectiveExchangeRate()
	factor := decimal.NewNullDecimal(tx.PriceFactor)

	entries := make([]entry, 0, 3)
	entries = append(entries, entry{
		holding:      asset,
		on:           tx.Date,
		quantity:     p.latest(asset).Add(tx.Quantity.Mul(sign)),
		price:        tx.Price,
		priceFactor:  factor,
		exchangeRate: decimal.NewNullDecimal(rate),
		baseCurrency: tx.BaseCurrency,
	})

	cost := tx.Quantity.Mul(tx.Price.Decimal).Mul(tx.PriceFactor).Mul(rate)
	flow := cost.Mul(sign).Neg()

	base, funded := tx.BaseHolding()
	fee, charged := tx.FeeHolding()
	if funded && charged && base == fee {
		return append(entries, entry{
			holding:     base,
			on:          tx.Date,
			quantity:    p.latest(base).Add(flow).Sub(tx.Fee),
			priceFactor: factor,
		}), nil
	}
	if funded {
		entries = append(entries, entry{
			holding:     base,
			on:          tx.Date,
			quantity:    p.latest(base).Add(flow),
			priceFactor: factor,
		})
	}
	if charged {
		entries = append(entries, entry{
			holding:     fee,
			on:          tx.Date,
			quantity:    p.latest(fee).Sub(tx.Fee),
			priceFactor: factor,
		})
	}
	return entries, nil
}
