// Package config loads the optional pragmata.toml host configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file searched for from the start directory upward.
const FileName = "pragmata.toml"

// Config is the host-side configuration; every field has a working zero
// value so running without a file needs no special casing.
type Config struct {
	Suggest  SuggestConfig  `toml:"suggest"`
	Complete CompleteConfig `toml:"complete"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// SuggestConfig widens the suggestion exclusion lists.
type SuggestConfig struct {
	// ExcludeExtensions are extension names never to suggest.
	ExcludeExtensions []string `toml:"exclude_extensions"`
	// SilenceNever are warning names never to silence with -Wno-*.
	SilenceNever []string `toml:"silence_never"`
}

// CompleteConfig bounds completion output.
type CompleteConfig struct {
	// MaxResults caps the candidate list; 0 means unlimited.
	MaxResults int `toml:"max_results"`
}

// CatalogConfig points at the compiler used to refresh catalogs.
type CatalogConfig struct {
	GHC string `toml:"ghc"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{}
}

// Find walks from startDir toward the filesystem root looking for a
// pragmata.toml. ok is false when none exists.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes the config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %q: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the config for startDir, returning defaults when
// no file exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
