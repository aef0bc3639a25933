// SPDX-License-Identifier: MIT
// Package config loads the optional qweave.yaml defaults file and
// archived counts files for the command line.
//
// qweave.yaml is looked up in one directory only and its absence is
// not an error; absent keys keep their built-in defaults. Counts files
// are JSON with comments and trailing commas allowed, the dialect
// editors produce, stripped to plain JSON before decoding.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileName is the defaults file the CLI looks for in the working
// directory.
const FileName = "qweave.yaml"

// Config carries the demo defaults every subcommand starts from.
type Config struct {
	Qubits int   `yaml:"qubits"`
	Shots  int   `yaml:"shots"`
	Seed   int64 `yaml:"seed"`
}

// Default returns the built-in settings: a three-wire register, 1024
// shots, seed 1.
func Default() Config {
	return Config{Qubits: 3, Shots: 1024, Seed: 1}
}

// LoadOptional reads dir/qweave.yaml when present and overlays it on
// the defaults. A missing file returns Default() unchanged; a present
// but unreadable or invalid file is an error.
func LoadOptional(dir string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", FileName, err)
	}

	return parse(cfg, data, FileName)
}

// Load reads an explicit defaults file; unlike LoadOptional the file
// must exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}

	return parse(Default(), data, path)
}

// parse overlays data on cfg and validates the result.
func parse(cfg Config, data []byte, name string) (Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", name, err)
	}
	if cfg.Qubits < 0 {
		return Default(), fmt.Errorf("config: %s: qubits must be non-negative (got %d)", name, cfg.Qubits)
	}
	if cfg.Shots < 1 {
		return Default(), fmt.Errorf("config: %s: shots must be positive (got %d)", name, cfg.Shots)
	}

	return cfg, nil
}

// LoadCounts reads a counts file: a JSON object of bitstring keys to
// non-negative tallies, with comments and trailing commas tolerated.
func LoadCounts(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read counts %s: %w", path, err)
	}
	var counts map[string]int
	if err := json.Unmarshal(jsonc.ToJSON(data), &counts); err != nil {
		return nil, fmt.Errorf("config: parse counts %s: %w", path, err)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("config: counts %s: no outcomes", path)
	}
	for key, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("config: counts %s: negative tally for %q", path, key)
		}
	}

	return counts, nil
}
