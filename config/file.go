package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Keys of the configuration file understood by fol.
const (
	KeyLedgerFile  = "ledger.file"
	KeyLedgerPath  = "ledger.path"
	KeyOutputStyle = "output.style"
)

// Config is a resolved configuration file: nested objects are flattened into
// dotted keys.
type Config map[string]any

// Load reads the configuration of environment env in dir. A missing file is an
// empty configuration.
func Load(dir, env string) (Config, error) {
	name := filepath.Join(dir, env+".json")
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("file", name).Msg("no configuration file")
		return Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f, os.LookupEnv)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return c, nil
}

// Decode reads a JSON configuration from r and resolves it with lookup.
func Decode(r io.Reader, lookup func(string) (string, bool)) (Config, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return Resolve(raw, lookup), nil
}

// Resolve flattens root into dotted keys.
//
// A string value "$NAME" is replaced by the variable NAME found by lookup. An
// unknown variable is logged and resolved to nil. "$$" escapes a leading "$",
// as in "$$.transactions".
func Resolve(root any, lookup func(string) (string, bool)) Config {
	c := make(Config)
	resolve(c, root, "", lookup)
	return c
}

func resolve(c Config, node any, path string, lookup func(string) (string, bool)) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if path != "" {
				key = path + "." + key
			}
			resolve(c, child, key, lookup)
		}
	case string:
		if strings.HasPrefix(v, "$$") {
			c[path] = v[1:]
			return
		}
		name, ok := strings.CutPrefix(v, "$")
		if !ok {
			c[path] = v
			return
		}
		value, found := lookup(name)
		if !found {
			log.Warn().Str("key", path).Str("variable", name).Msg("no environment variable set")
			c[path] = nil
			return
		}
		c[path] = value
	default:
		c[path] = v
	}
}

// String returns the value of key if it is a string.
func (c Config) String(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}
