package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/Mavwarf/iconset/internal/paths"
)

// DefaultRSVGPaths are the install locations probed for rsvg-convert,
// in priority order (Homebrew on Apple Silicon first, then Intel).
var DefaultRSVGPaths = []string{
	"/opt/homebrew/bin/rsvg-convert",
	"/usr/local/bin/rsvg-convert",
}

// Config holds the icon layout and tool locations.
type Config struct {
	IconDir   string   `json:"icon_dir,omitempty"`
	SVGFile   string   `json:"svg_file,omitempty"`
	RSVGPaths []string `json:"rsvg_paths,omitempty"`
	History   bool     `json:"history,omitempty"`
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Default returns the built-in configuration used when no config file
// is found.
func Default() Config {
	return Config{
		IconDir:   paths.DefaultIconDir,
		SVGFile:   paths.DefaultSVGName,
		RSVGPaths: append([]string(nil), DefaultRSVGPaths...),
	}
}

// SVGPath returns the full path of the source SVG.
func (c Config) SVGPath() string {
	return filepath.Join(c.IconDir, c.SVGFile)
}

// envOverrides holds raw environment values. Unset variables leave the
// corresponding pointer nil.
type envOverrides struct {
	IconDir   *string  `env:"ICONSET_DIR"`
	SVGFile   *string  `env:"ICONSET_SVG"`
	RSVGPaths []string `env:"ICONSET_RSVG_PATHS" envSeparator:","`
	History   *bool    `env:"ICONSET_HISTORY"`
}

// Load reads and parses a config file, then applies environment
// overrides. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. iconset-config.json next to the running binary
//  3. ~/.config/iconset/iconset-config.json
//  4. built-in defaults
func Load(explicitPath string) (Config, error) {
	cfg, err := loadFile(explicitPath)
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func applyEnv(cfg *Config) error {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if e.IconDir != nil {
		cfg.IconDir = *e.IconDir
	}
	if e.SVGFile != nil {
		cfg.SVGFile = *e.SVGFile
	}
	if len(e.RSVGPaths) > 0 {
		cfg.RSVGPaths = e.RSVGPaths
	}
	if e.History != nil {
		cfg.History = *e.History
	}
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
