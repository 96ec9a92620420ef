// Copyright 2024 FeatureBaseDB, Inc.
// SPDX-License-Identifier: Apache-2.0
package tiledb

import (
	"os"

	toml "github.com/pelletier/go-toml"
)

// Config carries the few knobs the Query core itself owns. It does not
// configure the Reader/Writer engines, StorageManager, or ArraySchema,
// all of which are out of scope.
type Config struct {
	// DefaultLayout names a Layout, parsed by Layout(). NewQuery does not
	// read Config; a new Query always starts at ROW_MAJOR.
	DefaultLayout string `toml:"default-layout"`

	// MaxIncompleteRounds bounds how many times a caller-facing wrapper
	// should loop Query.Process against an INCOMPLETE READ before giving
	// up; the core itself never loops internally.
	MaxIncompleteRounds int `toml:"max-incomplete-rounds"`

	// LogLevel names the verbosity a logger.Logger should be constructed
	// at ("panic", "error", "warn", "info", "debug").
	LogLevel string `toml:"log-level"`
}

// NewConfig returns a Config populated with the core's defaults.
func NewConfig() *Config {
	return &Config{
		DefaultLayout:       ROW_MAJOR.String(),
		MaxIncompleteRounds: 1000,
		LogLevel:            "info",
	}
}

// LoadConfig reads and unmarshals a TOML config file at path, starting
// from NewConfig's defaults so that unset fields keep their default
// value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Layout parses DefaultLayout into a Layout value, defaulting to
// ROW_MAJOR for an unrecognized string.
func (c *Config) Layout() Layout {
	switch c.DefaultLayout {
	case "COL_MAJOR":
		return COL_MAJOR
	case "GLOBAL_ORDER":
		return GLOBAL_ORDER
	case "UNORDERED":
		return UNORDERED
	default:
		return ROW_MAJOR
	}
}
