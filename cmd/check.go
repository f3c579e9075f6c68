package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"go.uber.org/multierr"
)

var (
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "list every problem of the ledger" }
func (*checkCmd) Usage() string {
	return `fol check

  Validates every transaction of the ledger: known types, currency codes,
  fees, prices and chronological order. All problems are listed at once.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	problems := multierr.Errors(ledger.Validate())
	for _, p := range problems {
		red.Fprint(stdout, "✗ ")
		fmt.Fprintln(stdout, p)
	}
	if len(problems) > 0 {
		red.Fprintf(stdout, "%d problem(s) in %d transactions\n", len(problems), ledger.Len())
		return subcommands.ExitFailure
	}
	green.Fprintf(stdout, "✓ %d transactions\n", ledger.Len())
	return subcommands.ExitSuccess
}
