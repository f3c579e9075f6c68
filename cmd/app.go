// Package cmd implements the fol command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updatesCmd{}, "reports")
	c.Register(&balancesCmd{}, "reports")

	c.Register(&checkCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger", "", "Path to the ledger file (JSON array or JSONL). Overrides FOLIO_LEDGER_FILE and the configuration file.")
	ledgerPath = flag.String("path", "", "JSONPath selecting the transactions inside the ledger file, e.g. $.transactions")
	style      = flag.String("style", "", "Markdown style: auto, dark, light, notty or raw")
)

// settings in use, resolved by Setup.
var settings = &config.Settings{LedgerFile: "transactions.json", Style: "auto"}

// Outputs of the commands, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Setup resolves the settings, after flags have been parsed. Environment
// variables come first, then the configuration file and finally flags.
func Setup() error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := SetupLogger(s.LogLevel, s.LogFormat); err != nil {
		return err
	}

	c, err := config.Load(s.ConfigDir, s.Env)
	if err != nil {
		return err
	}
	s.Merge(c)

	if *ledgerFile != "" {
		s.LedgerFile = *ledgerFile
	}
	if *ledgerPath != "" {
		s.LedgerPath = *ledgerPath
	}
	if *style != "" {
		s.Style = *style
	}
	settings = s
	log.Debug().Str("env", s.Env).Str("ledger", s.LedgerFile).Str("path", s.LedgerPath).Msg("settings")
	return nil
}

// DecodeLedger loads the ledger selected by the settings.
func DecodeLedger() (*folio.Ledger, error) {
	return folio.LoadLedger(settings.LedgerFile, folio.DecodeOptions{Path: settings.LedgerPath})
}

// printMarkdown prints md to stdout, rendered for the terminal unless the
// style is raw.
func printMarkdown(md string) {
	if settings.Style == "raw" {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, settings.Style)
	if err != nil {
		log.Warn().Err(err).Str("style", settings.Style).Msg("cannot render markdown, printing it raw")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
