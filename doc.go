// Package folio turns a personal-finance transaction list into per-holding
// running balances.
//
// A holding is either a tradable asset, keyed by its symbol, or a cash account
// keyed by "Cash:" followed by its currency code. Transactions (deposits,
// withdrawals, payments, fees, purchases and sales) are walked in input order and
// each one appends zero or more Update records to the holdings it touches. Every
// Update carries the new running quantity of its holding.
//
// The computation is stateless between calls: ComputeUpdates derives everything
// from the full transaction list and the result does not share state with any
// other computation.
//
// Loading a transaction file (JSON array or JSONL) and filling defaulted fields
// is handled by DecodeLedger, which produces a Ledger ready for ComputeUpdates.
package folio
