package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/folio/date"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// balancesCmd holds the flags for the 'balances' subcommand.
type balancesCmd struct {
	date string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the balance of every holding on a date" }
func (*balancesCmd) Usage() string {
	return `fol balances [-d <date>]

  Displays the balance of every holding at the end of a given day.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the balances (YYYY-MM-DD)")
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	updates, err := ledger.Updates()
	if err != nil {
		fmt.Fprintf(stderr, "Error computing updates: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderBalances(updates, on))
	return subcommands.ExitSuccess
}
