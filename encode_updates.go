package folio

import (
	"encoding/json"
	"io"
)

// MarshalJSON implements the json.Marshaler interface for Update.
func (u Update) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", u.Date)
	w.Append("quantity", u.Quantity)
	w.If(u.Price.Valid, "price", u.Price)
	w.Append("priceFactor", u.PriceFactor)
	w.Append("exchangeRate", u.ExchangeRate)
	w.Optional("baseCurrency", u.BaseCurrency)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Holding.
func (h *Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("assetCurrency", h.assetCurrency)
	w.Append("updates", h.updates)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Updates. Holdings are
// written in key order.
func (u *Updates) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for key, h := range u.All() {
		w.Append(string(key), h)
	}
	return w.MarshalJSON()
}

// EncodeUpdates writes u as an indented JSON object keyed by holding.
func EncodeUpdates(w io.Writer, u *Updates) error {
	b, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
