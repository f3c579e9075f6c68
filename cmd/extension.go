package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Environment passed to extensions. Names match the settings of fol itself,
// so an extension written in Go can call config.LoadSettings.
const (
	EnvLedgerFile = "FOLIO_LEDGER_FILE"
	EnvLedgerPath = "FOLIO_LEDGER_PATH"
	EnvStyle      = "FOLIO_STYLE"
)

// RunExtension attempts to find and execute an external fol-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fol-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass resolved settings as environment variables
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+settings.LedgerFile,
		EnvLedgerPath+"="+settings.LedgerPath,
		EnvStyle+"="+settings.Style,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}
	return true, 0
}
