package folio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// LoadLedger opens and decodes the transaction file at path.
func LoadLedger(path string, opts DecodeOptions) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f, opts)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger in its canonical JSONL form to path. The file is
// replaced atomically.
func SaveLedger(path string, l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	return nil
}
