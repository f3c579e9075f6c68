package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

// updatesCmd holds the flags for the 'updates' subcommand.
type updatesCmd struct {
	holding string
	from    string
	to      string
	json    bool
	output  string
}

func (*updatesCmd) Name() string     { return "updates" }
func (*updatesCmd) Synopsis() string { return "compute the running balance of every holding" }
func (*updatesCmd) Usage() string {
	return `fol updates [-h <holding>] [-s <from>] [-d <to>] [-json] [-o <file>]

  Processes the ledger and prints, for every holding, one line per transaction
  that touched it with the balance right after it.

  A holding is an asset symbol (AAPL) or a cash account (Cash:USD).

Usage Examples:
# All holdings.
$ fol updates

# The USD cash account in January, as JSON.
$ fol updates -h Cash:USD -s 2025-01-01 -d 2025-01-31 -json
`
}

func (c *updatesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holding, "h", "", "Only this holding, e.g. AAPL or Cash:USD")
	f.StringVar(&c.from, "s", "", "First day of the updates (included)")
	f.StringVar(&c.to, "d", "", "Last day of the updates (included)")
	f.BoolVar(&c.json, "json", false, "Print JSON instead of markdown")
	f.StringVar(&c.output, "o", "", "Write the JSON updates to this file instead of the standard output")
}

func (c *updatesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := date.ParseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing dates: %v\n", err)
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
	holding := folio.HoldingKey(c.holding)

	switch {
	case c.output != "":
		var buf bytes.Buffer
		if err := folio.EncodeUpdates(&buf, updates.Filter(holding, r)); err != nil {
			fmt.Fprintf(stderr, "Error encoding updates: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := atomic.WriteFile(c.output, &buf); err != nil {
			fmt.Fprintf(stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		log.Info().Str("file", c.output).Int("holdings", updates.Len()).Msg("updates written")
	case c.json:
		if err := folio.EncodeUpdates(stdout, updates.Filter(holding, r)); err != nil {
			fmt.Fprintf(stderr, "Error encoding updates: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		printMarkdown(renderer.RenderUpdates(updates, renderer.UpdatesOptions{Holding: holding, Range: r}))
	}
	return subcommands.ExitSuccess
}
