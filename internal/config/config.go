package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultImage is the published PGS-Browser image run when neither the
// config file nor --image says otherwise.
const DefaultImage = "artomovlab/pgs-browser:latest"

// Config carries the launcher's defaults. It is constructed once at
// startup; flag values override it afterwards.
type Config struct {
	Image      string  `toml:"image"`
	Runtime    string  `toml:"runtime"`
	OutDir     string  `toml:"outdir"`
	MinOverlap float64 `toml:"min_overlap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Image:      DefaultImage,
		OutDir:     "outputs",
		MinOverlap: 0.7,
	}
}

// Load reads the TOML config at path over the built-in defaults. With an
// empty path the well-known location is tried and silently skipped when
// absent; an explicit path that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pgs-browser", "config.toml")
}
