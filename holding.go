package folio

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CashPrefix prefixes the key of every cash holding.
const CashPrefix = "Cash:"

// HoldingKey identifies a holding: an asset symbol or "Cash:<currency>".
type HoldingKey string

// Cash returns the key of the cash holding for currency.
func Cash(currency string) HoldingKey { return HoldingKey(CashPrefix + currency) }

// IsCash reports whether k is a cash holding.
func (k HoldingKey) IsCash() bool { return strings.HasPrefix(string(k), CashPrefix) }

// Currency returns the currency of a cash holding, or "" for an asset holding.
func (k HoldingKey) Currency() string {
	cur, ok := strings.CutPrefix(string(k), CashPrefix)
	if !ok {
		return ""
	}
	return cur
}

func (k HoldingKey) String() string { return string(k) }

// AssetHolding returns the primary holding of t: the cash account of t.Asset for
// cash transactions, the asset itself otherwise.
func (t Transaction) AssetHolding() HoldingKey {
	if t.Type.IsCash() {
		return Cash(t.Asset)
	}
	return HoldingKey(t.Asset)
}

// FeeHolding returns the cash holding charged with the fee, if there is a fee.
func (t Transaction) FeeHolding() (HoldingKey, bool) {
	if !t.Fee.IsPositive() {
		return "", false
	}
	return Cash(t.FeeCurrency), true
}

// BaseHolding returns the cash holding funding (or settling) the transaction, if any.
func (t Transaction) BaseHolding() (HoldingKey, bool) {
	if t.BaseCurrency == "" {
		return "", false
	}
	return Cash(t.BaseCurrency), true
}

// EffectiveExchangeRate returns the rate to apply to the trade cost: the
// transaction rate when it is funded in a currency other than the asset's, 1 otherwise.
func (t Transaction) EffectiveExchangeRate() decimal.Decimal {
	if t.BaseCurrency != "" && t.BaseCurrency != t.AssetCurrency {
		return t.ExchangeRate
	}
	return one
}
