// Package config gathers the settings of the fol command: environment
// variables first, then a per environment JSON file.
package config

import (
	"fmt"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
)

// Settings holds the configuration read from the environment.
type Settings struct {
	Env        string `env:"FOLIO_ENV"         envDefault:"dev"`
	ConfigDir  string `env:"FOLIO_CONFIG_DIR"  envDefault:"configuration"`
	LedgerFile string `env:"FOLIO_LEDGER_FILE" envDefault:"transactions.json"`
	LedgerPath string `env:"FOLIO_LEDGER_PATH"`

	// Logging
	LogLevel  string `env:"FOLIO_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"FOLIO_LOG_FORMAT" envDefault:"console"`

	// Style is the glamour style used to print markdown, "raw" prints it as is.
	Style string `env:"FOLIO_STYLE" envDefault:"auto"`
}

// LoadSettings reads the settings from environment variables.
func LoadSettings() (*Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return nil, fmt.Errorf("config.LoadSettings: %w", err)
	}
	return &s, nil
}

// File returns the path of the configuration file for the current environment.
func (s *Settings) File() string { return filepath.Join(s.ConfigDir, s.Env+".json") }

// Merge overrides s with the recognized keys of c.
func (s *Settings) Merge(c Config) {
	if v, ok := c.String(KeyLedgerFile); ok {
		s.LedgerFile = v
	}
	if v, ok := c.String(KeyLedgerPath); ok {
		s.LedgerPath = v
	}
	if v, ok := c.String(KeyOutputStyle); ok {
		s.Style = v
	}
}
