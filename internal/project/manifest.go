// Package project locates and parses the optional loxi.toml manifest,
// which supplies defaults for command flags. An absent manifest is not an
// error.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a discovered loxi.toml with its resolved location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest file.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// CheckConfig configures the check command.
type CheckConfig struct {
	// Jobs bounds check parallelism; 0 means one worker per CPU.
	Jobs int `toml:"jobs"`
	// Cache toggles the on-disk result cache.
	Cache bool `toml:"cache"`
}

// OutputConfig configures rendering defaults.
type OutputConfig struct {
	// Format is "pretty" or "json" (token output only).
	Format string `toml:"format"`
	// Color is "auto", "on", or "off".
	Color string `toml:"color"`
}

// Find walks up from startDir looking for loxi.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "loxi.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest. ok=false means none was found.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
