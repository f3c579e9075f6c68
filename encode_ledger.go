package folio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio/date"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Column names of a transaction file.
const (
	colType          = "Type"
	colDate          = "Date"
	colAsset         = "Asset"
	colQuantity      = "Quantity"
	colPrice         = "Price"
	colPriceFactor   = "Price Factor"
	colAssetCurrency = "Asset Currency"
	colExchangeRate  = "Exchange Rate"
	colBaseCurrency  = "Base Currency"
	colFee           = "Fee"
	colFeeCurrency   = "Fee Currency"
	colNotes         = "Notes"
)

// DecodeOptions tunes DecodeLedger.
type DecodeOptions struct {
	// Path is a JSONPath expression selecting the transaction list inside the
	// document, e.g. "$.portfolio.transactions". Empty means the document is the
	// list itself.
	Path string
}

// record is a transaction as it appears in a file: every field may be missing.
type record struct {
	Type          TransactionType     `json:"Type"`
	Date          date.Date           `json:"Date"`
	Asset         string              `json:"Asset"`
	Quantity      decimal.Decimal     `json:"Quantity"`
	Price         decimal.NullDecimal `json:"Price"`
	PriceFactor   decimal.NullDecimal `json:"Price Factor"`
	AssetCurrency string              `json:"Asset Currency"`
	ExchangeRate  decimal.NullDecimal `json:"Exchange Rate"`
	BaseCurrency  string              `json:"Base Currency"`
	Fee           decimal.NullDecimal `json:"Fee"`
	FeeCurrency   string              `json:"Fee Currency"`
	Notes         string              `json:"Notes"`
}

// transaction fills the defaulted fields of r. It returns the number of fields
// that got a default value.
func (r record) transaction() (tx Transaction, defaulted int) {
	tx = Transaction{
		Type:          r.Type,
		Date:          r.Date,
		Asset:         r.Asset,
		Quantity:      r.Quantity,
		Price:         r.Price,
		PriceFactor:   r.PriceFactor.Decimal,
		AssetCurrency: r.AssetCurrency,
		ExchangeRate:  r.ExchangeRate.Decimal,
		BaseCurrency:  r.BaseCurrency,
		Fee:           r.Fee.Decimal,
		FeeCurrency:   r.FeeCurrency,
		Notes:         r.Notes,
	}
	if !r.PriceFactor.Valid {
		tx.PriceFactor = one
		defaulted++
	}
	if !r.ExchangeRate.Valid {
		tx.ExchangeRate = one
		defaulted++
	}
	if !r.Fee.Valid {
		tx.Fee = decimal.Zero
		defaulted++
	}
	return tx, defaulted
}

// DecodeLedger decodes a transaction list and fills its defaulted fields.
//
// The input is either a JSON document (an array of transactions, or any
// document when opts.Path selects the array) or a JSONL stream with one
// transaction per line. Transactions must be sorted by date.
//
// Transaction types are not checked here: ComputeUpdates rejects the unknown ones.
func DecodeLedger(r io.Reader, opts DecodeOptions) (*Ledger, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}

	var records []record
	switch {
	case opts.Path != "":
		records, err = decodeSelection(br, opts.Path)
	case first == '[':
		err = json.NewDecoder(br).Decode(&records)
	default:
		records, err = decodeLines(br)
	}
	if err != nil {
		return nil, err
	}

	ledger := NewLedger()
	defaulted := 0
	for i, rec := range records {
		if rec.Date.IsZero() {
			return nil, fmt.Errorf("transaction #%d: missing %q", i+1, colDate)
		}
		if rec.Type == "" {
			return nil, fmt.Errorf("transaction #%d: missing %q", i+1, colType)
		}
		tx, n := rec.transaction()
		defaulted += n
		ledger.transactions = append(ledger.transactions, tx)
	}
	if err := ledger.checkOrder(); err != nil {
		return nil, err
	}
	log.Debug().Int("transactions", ledger.Len()).Int("defaulted", defaulted).Msg("decoded ledger")
	return ledger, nil
}

// peekNonSpace returns the first non blank byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// decodeLines decodes one transaction per non empty line.
func decodeLines(r io.Reader) ([]record, error) {
	var records []record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec record
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode transaction on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return records, nil
}

// decodeSelection decodes the whole document, and the transaction list selected by path.
func decodeSelection(r io.Reader, path string) ([]record, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not select transactions with %q: %w", path, err)
	}
	// a path selecting the list gets a list, a path selecting a single
	// transaction gets an object.
	if _, ok := selected.(map[string]any); ok {
		selected = []any{selected}
	}
	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("could not read transactions selected by %q: %w", path, err)
	}
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("transactions selected by %q: %w", path, err)
	}
	return records, nil
}

// EncodeLedger writes the ledger as JSONL, one transaction per line, with a
// stable field order. Defaulted fields holding their default are omitted.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for i, tx := range l.transactions {
		b, err := encodeTransaction(tx)
		if err != nil {
			return fmt.Errorf("could not encode transaction #%d: %w", i+1, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func encodeTransaction(tx Transaction) ([]byte, error) {
	var w jsonObjectWriter
	w.Append(colType, tx.Type)
	w.Append(colDate, tx.Date)
	w.Append(colAsset, tx.Asset)
	w.Append(colQuantity, tx.Quantity)
	w.If(tx.Price.Valid, colPrice, tx.Price)
	w.If(!tx.PriceFactor.Equal(one), colPriceFactor, tx.PriceFactor)
	w.Optional(colAssetCurrency, tx.AssetCurrency)
	w.If(!tx.ExchangeRate.Equal(one), colExchangeRate, tx.ExchangeRate)
	w.Optional(colBaseCurrency, tx.BaseCurrency)
	w.If(!tx.Fee.IsZero(), colFee, tx.Fee)
	w.Optional(colFeeCurrency, tx.FeeCurrency)
	w.Optional(colNotes, tx.Notes)
	return w.MarshalJSON()
}
