package folio

import (
	"errors"
	"fmt"
)

// Errors raised while computing updates. Any of them aborts the whole computation.
var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrMissingFeeCurrency     = errors.New("fee without fee currency")
	ErrMissingPrice           = errors.New("trade without price")
)

// UnknownTransactionTypeError reports a transaction type the dispatcher has no rule for.
type UnknownTransactionTypeError struct {
	Type TransactionType
}

func (e *UnknownTransactionTypeError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownTransactionType, string(e.Type))
}

// Is makes errors.Is(err, ErrUnknownTransactionType) true.
func (e *UnknownTransactionTypeError) Is(target error) bool { return target == ErrUnknownTransactionType }

// ErrUnsorted is returned when a transaction list is not in chronological order.
var ErrUnsorted = errors.New("transactions are not sorted by date")
