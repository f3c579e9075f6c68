package folio

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"go.uber.org/multierr"
)

// ValidateCurrency checks that code is an ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("invalid currency code %q: must be 3 letters", code)
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("invalid currency code %q: must be upper case letters", code)
		}
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// Validate reports every problem of t that would make it fail, or give
// meaningless results, in ComputeUpdates.
func (t Transaction) Validate() error {
	var err error
	if !t.Type.Known() {
		err = multierr.Append(err, &UnknownTransactionTypeError{Type: t.Type})
	}
	if t.Asset == "" {
		err = multierr.Append(err, errors.New("asset is missing"))
	}
	if t.Type.IsCash() {
		if e := ValidateCurrency(t.Asset); e != nil {
			err = multierr.Append(err, fmt.Errorf("cash asset: %w", e))
		}
	}
	if t.AssetCurrency != "" {
		if e := ValidateCurrency(t.AssetCurrency); e != nil {
			err = multierr.Append(err, fmt.Errorf("asset currency: %w", e))
		}
	}
	if t.Quantity.IsNegative() {
		err = multierr.Append(err, fmt.Errorf("quantity must not be negative, got %s", t.Quantity))
	}
	if t.Fee.IsNegative() {
		err = multierr.Append(err, fmt.Errorf("fee must not be negative, got %s", t.Fee))
	}
	if t.Fee.IsPositive() && t.FeeCurrency == "" {
		err = multierr.Append(err, ErrMissingFeeCurrency)
	}
	if t.FeeCurrency != "" {
		if e := ValidateCurrency(t.FeeCurrency); e != nil {
			err = multierr.Append(err, fmt.Errorf("fee currency: %w", e))
		}
	}
	if t.BaseCurrency != "" {
		if e := ValidateCurrency(t.BaseCurrency); e != nil {
			err = multierr.Append(err, fmt.Errorf("base currency: %w", e))
		}
	}
	if t.Type == Purchase || t.Type == Sale {
		if !t.Price.Valid {
			err = multierr.Append(err, ErrMissingPrice)
		}
		if !t.PriceFactor.IsPositive() {
			err = multierr.Append(err, fmt.Errorf("price factor must be positive, got %s", t.PriceFactor))
		}
		if !t.ExchangeRate.IsPositive() {
			err = multierr.Append(err, fmt.Errorf("exchange rate must be positive, got %s", t.ExchangeRate))
		}
	}
	return err
}

// Validate checks the whole ledger, every problem is reported. Use
// multierr.Errors to list them.
func (l *Ledger) Validate() error {
	err := l.checkOrder()
	for i, tx := range l.transactions {
		for _, e := range multierr.Errors(tx.Validate()) {
			err = multierr.Append(err, fmt.Errorf("transaction #%d on %s: %w", i+1, tx.Date, e))
		}
	}
	return err
}
