// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package config

import (
	"fmt"
	"strings"

	"unitcalc/fraction"
	"unitcalc/units"
)

func MapConfig(path string, yc YAMLConfig) (Config, error) {
	cfg := Default()
	cfg.Path = path
	cfg.Group = yc.Group
	cfg.History = yc.History

	if yc.Precision != nil {
		if *yc.Precision < 0 {
			return Config{}, invalidField(path, "precision", "must not be negative")
		}
		cfg.Precision = *yc.Precision
	}
	if strings.TrimSpace(yc.HistoryPath) != "" {
		cfg.HistoryPath = yc.HistoryPath
	}

	cfg.Units = make([]units.DefinedUnit, 0, len(yc.Units))
	for i, yu := range yc.Units {
		unit, err := mapUnit(path, fmt.Sprintf("units[%d]", i), yu)
		if err != nil {
			return Config{}, err
		}
		cfg.Units = append(cfg.Units, unit)
	}

	return cfg, nil
}

func mapUnit(path, prefix string, yu YAMLUnit) (units.DefinedUnit, error) {
	if strings.TrimSpace(yu.Name) == "" {
		return units.DefinedUnit{}, invalidField(path, prefix+".name", "name is required")
	}

	dimension := units.Dimension{}
	for name, raw := range yu.Dimension {
		quantity, ok := units.ParseQuantity(name)
		if !ok {
			return units.DefinedUnit{}, invalidField(path, prefix+".dimension."+name, "unknown quantity")
		}
		exponent, ok := fraction.Parse(strings.TrimSpace(string(raw)))
		if !ok {
			return units.DefinedUnit{}, invalidField(path, prefix+".dimension."+name,
				fmt.Sprintf("invalid exponent %q", string(raw)))
		}
		if !exponent.IsZero() {
			dimension[quantity] = exponent
		}
	}

	coefficient := 1.0
	if yu.Coefficient != nil {
		coefficient = *yu.Coefficient
	}
	if coefficient == 0 {
		return units.DefinedUnit{}, invalidField(path, prefix+".coefficient", "must not be zero")
	}

	unit, err := units.NewDefinedUnit(yu.Name, yu.Symbol, dimension, coefficient, yu.Constant)
	if err != nil {
		return units.DefinedUnit{}, invalidField(path, prefix+".symbol", err.Error())
	}
	return unit, nil
}

// UnitsDTO is the inverse of the units part of MapConfig.
func UnitsDTO(defined []units.DefinedUnit) []YAMLUnit {
	result := make([]YAMLUnit, 0, len(defined))
	for _, d := range defined {
		dimension := map[string]Exponent{}
		for q, e := range d.Dimension() {
			dimension[q.String()] = exponentOf(e)
		}
		coefficient := d.Coefficient()
		result = append(result, YAMLUnit{
			Name:        d.Name(),
			Symbol:      d.Symbol(),
			Dimension:   dimension,
			Coefficient: &coefficient,
			Constant:    d.Constant(),
		})
	}
	return result
}

func invalidField(path, field, msg string) error {
	return Error.New("%s: field %s: %s", path, field, msg)
}
