package folio

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/folio/date"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order; transactions on
// the same day keep their input order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding transactions, in the given order.
func NewLedger(transactions ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(transactions)}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transaction list.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All iterates over transactions with their position in the ledger.
func (l *Ledger) All() iter.Seq2[int, Transaction] { return slices.All(l.transactions) }

// Append adds transactions at the end of the ledger. It fails if they would
// break the chronological order, leaving the ledger unchanged.
func (l *Ledger) Append(transactions ...Transaction) error {
	candidate := &Ledger{transactions: append(slices.Clone(l.transactions), transactions...)}
	if err := candidate.checkOrder(); err != nil {
		return err
	}
	l.transactions = candidate.transactions
	return nil
}

// Period returns the range of days covered by the ledger. It is the zero Range
// for an empty ledger.
func (l *Ledger) Period() date.Range {
	if len(l.transactions) == 0 {
		return date.Range{}
	}
	return date.NewRange(l.transactions[0].Date, l.transactions[len(l.transactions)-1].Date)
}

// Updates computes the per holding updates of the ledger.
func (l *Ledger) Updates() (*Updates, error) { return ComputeUpdates(l.transactions) }

// checkOrder returns an error if dates are not chronological.
func (l *Ledger) checkOrder() error {
	for i := 1; i < len(l.transactions); i++ {
		prev, curr := l.transactions[i-1].Date, l.transactions[i].Date
		if curr.Before(prev) {
			return fmt.Errorf("transaction #%d on %s is before transaction #%d on %s: %w", i+1, curr, i, prev, ErrUnsorted)
		}
	}
	return nil
}
