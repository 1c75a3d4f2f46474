// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package config loads display options and user-defined units from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"unitcalc/units"
)

var Error = errs.Class("config")

type Config struct {
	Path        string // file the values came from, "" for defaults
	Precision   int
	Group       bool
	History     bool
	HistoryPath string
	Units       []units.DefinedUnit
}

// DataDir is where calc keeps its files, ~/data/calc.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", Error.Wrap(fmt.Errorf("failed to get home directory: %w", err))
	}
	return filepath.Join(home, "data", "calc"), nil
}

func Default() Config {
	cfg := Config{Precision: 4}
	if dir, err := DataDir(); err == nil {
		cfg.HistoryPath = filepath.Join(dir, "history.sqlite3")
	}
	return cfg
}

// Load reads path. An empty path means the default location, which may
// be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err != nil {
			return Config{}, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, Error.Wrap(fmt.Errorf("load %s: %w", path, err))
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, Error.Wrap(fmt.Errorf("parse %s: %w", path, err))
	}

	return MapConfig(path, dto)
}

// Registry builds the default catalog extended with the configured units.
func (c Config) Registry() (*units.Registry, error) {
	return units.NewBuilder().Add(c.Units...).Build()
}

// EncodeUnits renders units in the same schema Load accepts.
func EncodeUnits(defined []units.DefinedUnit) ([]byte, error) {
	b, err := yaml.Marshal(YAMLConfig{Units: UnitsDTO(defined)})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return b, nil
}
