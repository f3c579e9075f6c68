package folio

import (
	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of a transaction.
type TransactionType string

// Transaction types known to the update engine.
const (
	Deposit    TransactionType = "Deposit"
	Withdrawal TransactionType = "Withdrawal"
	Payment    TransactionType = "Payment"
	Fee        TransactionType = "Fee"
	Purchase   TransactionType = "Purchase"
	Sale       TransactionType = "Sale"
)

// TransactionTypes lists every known transaction type.
var TransactionTypes = []TransactionType{Deposit, Withdrawal, Payment, Fee, Purchase, Sale}

// IsCash reports whether transactions of this type move a cash account rather
// than an asset position.
func (t TransactionType) IsCash() bool {
	switch t {
	case Deposit, Withdrawal, Payment, Fee:
		return true
	}
	return false
}

// Known reports whether t is one of the TransactionTypes.
func (t TransactionType) Known() bool {
	switch t {
	case Deposit, Withdrawal, Payment, Fee, Purchase, Sale:
		return true
	}
	return false
}

func (t TransactionType) String() string { return string(t) }

// Transaction is a single ledger event.
//
// Quantity is always a positive amount, the sign is applied by the rule of its
// Type. Default-bearing fields (PriceFactor, ExchangeRate, Fee, Notes) are
// expected to be filled by the loader; see DecodeLedger.
type Transaction struct {
	Type          TransactionType
	Date          date.Date
	Asset         string              // traded symbol, or the currency code for cash transactions
	Quantity      decimal.Decimal     // magnitude of the event
	Price         decimal.NullDecimal // per unit price, only for Purchase and Sale
	PriceFactor   decimal.Decimal     // multiplier applied to Price (e.g. contract size)
	AssetCurrency string              // currency the asset is denominated in
	ExchangeRate  decimal.Decimal     // AssetCurrency to BaseCurrency rate
	BaseCurrency  string              // funding currency, "" for an unfunded trade
	Fee           decimal.Decimal     // never negative
	FeeCurrency   string              // required when Fee is positive
	Notes         string
}

var one = decimal.NewFromInt(1)

// withDefaults returns a copy of t with the zero default-bearing fields set to
// their defaults.
func (t Transaction) withDefaults() Transaction {
	if t.PriceFactor.IsZero() {
		t.PriceFactor = one
	}
	if t.ExchangeRate.IsZero() {
		t.ExchangeRate = one
	}
	return t
}

// NewDeposit creates a Deposit of quantity into the cash account of currency.
func NewDeposit(on date.Date, currency string, quantity decimal.Decimal) Transaction {
	return Transaction{Type: Deposit, Date: on, Asset: currency, AssetCurrency: currency, Quantity: quantity}.withDefaults()
}

// NewWithdrawal creates a Withdrawal of quantity from the cash account of currency.
func NewWithdrawal(on date.Date, currency string, quantity decimal.Decimal) Transaction {
	return Transaction{Type: Withdrawal, Date: on, Asset: currency, AssetCurrency: currency, Quantity: quantity}.withDefaults()
}

// NewPurchase creates a Purchase of quantity units of asset at price, funded
// from base. An empty base creates an unfunded purchase.
func NewPurchase(on date.Date, asset, currency string, quantity, price decimal.Decimal, base string) Transaction {
	return Transaction{
		Type:          Purchase,
		Date:          on,
		Asset:         asset,
		AssetCurrency: currency,
		Quantity:      quantity,
		Price:         decimal.NewNullDecimal(price),
		BaseCurrency:  base,
	}.withDefaults()
}

// NewSale creates a Sale of quantity units of asset at price, settled in base.
// An empty base creates an unsettled sale.
func NewSale(on date.Date, asset, currency string, quantity, price decimal.Decimal, base string) Transaction {
	t := NewPurchase(on, asset, currency, quantity, price, base)
	t.Type = Sale
	return t
}

// WithFee returns a copy of t charging fee in currency.
func (t Transaction) WithFee(fee decimal.Decimal, currency string) Transaction {
	t.Fee, t.FeeCurrency = fee, currency
	return t
}

// WithExchangeRate returns a copy of t with an AssetCurrency to BaseCurrency rate.
func (t Transaction) WithExchangeRate(rate decimal.Decimal) Transaction {
	t.ExchangeRate = rate
	return t
}

// WithPriceFactor returns a copy of t with a price multiplier.
func (t Transaction) WithPriceFactor(factor decimal.Decimal) Transaction {
	t.PriceFactor = factor
	return t
}
