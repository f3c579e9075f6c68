package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fol fmt [-w]

  Reads all transactions and prints them back in a canonical JSONL format:
  one transaction per line, a fixed field order, defaulted fields omitted.

Usage Examples:
# Rewrites the default ledger file.
$ fol fmt -w

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the result to the ledger file instead of the standard output")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.write && settings.LedgerPath != "" {
		fmt.Fprintf(stderr, "Error: cannot rewrite a ledger selected with a JSONPath (%s)\n", settings.LedgerPath)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		if err := folio.EncodeLedger(stdout, ledger); err != nil {
			fmt.Fprintf(stderr, "Error formatting ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := folio.SaveLedger(settings.LedgerFile, ledger); err != nil {
		fmt.Fprintf(stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info().Str("file", settings.LedgerFile).Int("transactions", ledger.Len()).Msg("ledger formatted")
	return subcommands.ExitSuccess
}
