// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"unitcalc/fraction"
)

type YAMLConfig struct {
	Precision   *int       `yaml:"precision,omitempty"`
	Group       bool       `yaml:"group,omitempty"`
	History     bool       `yaml:"history,omitempty"`
	HistoryPath string     `yaml:"history_path,omitempty"`
	Units       []YAMLUnit `yaml:"units,omitempty"`
}

type YAMLUnit struct {
	Name        string              `yaml:"name"`
	Symbol      string              `yaml:"symbol"`
	Dimension   map[string]Exponent `yaml:"dimension"`
	Coefficient *float64            `yaml:"coefficient,omitempty"`
	Constant    float64             `yaml:"constant,omitempty"`
}

// Exponent keeps the raw scalar so the mapper can report where a bad
// exponent lives. Both plain integers and "(n|d)" are accepted.
type Exponent string

func (e *Exponent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: exponent must be a scalar", node.Line)
	}
	*e = Exponent(node.Value)
	return nil
}

func (e Exponent) MarshalYAML() (any, error) {
	if n, err := strconv.ParseInt(string(e), 10, 64); err == nil {
		return n, nil
	}
	return string(e), nil
}

func exponentOf(f fraction.Fraction) Exponent {
	return Exponent(f.String())
}
