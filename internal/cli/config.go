package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds optional per-project defaults loaded from lvc.toml.
// Command-line flags always win over file values.
type config struct {
	// Base is the default base color (hex or known name).
	Base string `toml:"base"`

	// Backend is the default compile backend.
	Backend string `toml:"backend"`

	// Output is the default output path.
	Output string `toml:"output"`
}

// loadConfig loads CLI defaults. An explicit path must exist and
// parse; otherwise an lvc.toml next to the input file is used when
// present, and a missing file yields an empty config.
func loadConfig(explicit, inputPath string) (config, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(filepath.Dir(inputPath), "lvc.toml")
		if _, err := os.Stat(path); err != nil {
			return config{}, nil
		}
	}

	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
