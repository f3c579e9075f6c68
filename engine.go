package folio

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ComputeUpdates walks transactions in order and returns, for every holding they
// touch, its history of running balances.
//
// Transactions must be sorted by date; they are not sorted here. Any error aborts
// the computation and no Updates are returned.
func ComputeUpdates(transactions []Transaction) (*Updates, error) {
	p := newTracker()
	for i, tx := range transactions {
		entries, err := p.derive(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction #%d on %s: %w", i+1, tx.Date, err)
		}
		p.observe(tx.AssetHolding(), tx.AssetCurrency)
		p.append(entries)
	}
	u := p.assemble()
	log.Debug().Int("transactions", len(transactions)).Int("holdings", u.Len()).Msg("computed updates")
	return u, nil
}
