package renderer

import (
	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
)

// UpdatesOptions selects what RenderUpdates prints.
type UpdatesOptions struct {
	Holding folio.HoldingKey // only this holding, all if empty
	Range   date.Range       // only updates in this range, all if zero
}

// updatesView is the template data of the updates document.
type updatesView struct {
	Period   string
	Holdings []holdingView
}

type holdingView struct {
	Key           string
	AssetCurrency string
	Rows          []updateRow
}

// updateRow holds the formatted columns of an Update. Absent values are empty.
type updateRow struct {
	Date, Quantity, Price, PriceFactor, ExchangeRate, BaseCurrency string
}

func newUpdateRow(u folio.Update) updateRow {
	row := updateRow{
		Date:         u.Date.String(),
		Quantity:     u.Quantity.String(),
		PriceFactor:  u.PriceFactor.String(),
		ExchangeRate: u.ExchangeRate.String(),
		BaseCurrency: u.BaseCurrency,
	}
	if u.Price.Valid {
		row.Price = u.Price.Decimal.String()
	}
	return row
}

// RenderUpdates renders the update table of every holding in u.
//
// Holdings without any update selected by opts are left out.
func RenderUpdates(u *folio.Updates, opts UpdatesOptions) string {
	view := updatesView{}
	if opts.Range != (date.Range{}) {
		view.Period = opts.Range.String()
	}
	for key, h := range u.Filter(opts.Holding, opts.Range).All() {
		hv := holdingView{Key: key.String(), AssetCurrency: h.AssetCurrency()}
		for _, update := range h.Updates() {
			hv.Rows = append(hv.Rows, newUpdateRow(update))
		}
		view.Holdings = append(view.Holdings, hv)
	}

	partials := map[string]string{
		"holding_updates": "holding_updates.md",
	}
	return renderTemplate("updates", "updates.md", partials, view)
}
