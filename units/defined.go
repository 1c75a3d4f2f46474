// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"strings"
	"unicode"
)

// reserved characters are the equation operators
const reserved = "*/^"

// DefinedUnit is a named leaf unit. A value x in this unit is
// x*coefficient + constant in the base unit of its dimension.
type DefinedUnit struct {
	name        string
	symbol      string
	dimension   Dimension
	coefficient float64
	constant    float64
}

// NewDefinedUnit validates the symbol and returns the unit.
func NewDefinedUnit(name, symbol string, dimension Dimension, coefficient, constant float64) (DefinedUnit, error) {
	switch {
	case symbol == "":
		return DefinedUnit{}, InvalidSymbol.New("empty symbol for %q", name)
	case strings.IndexFunc(symbol, unicode.IsSpace) >= 0:
		return DefinedUnit{}, InvalidSymbol.New("symbol %q contains whitespace", symbol)
	case strings.ContainsAny(symbol, reserved):
		return DefinedUnit{}, InvalidSymbol.New("symbol %q contains one of %q", symbol, reserved)
	case symbol == "1":
		return DefinedUnit{}, InvalidSymbol.New("symbol %q is reserved", symbol)
	}

	return DefinedUnit{
		name:        name,
		symbol:      symbol,
		dimension:   dimension.clone(),
		coefficient: coefficient,
		constant:    constant,
	}, nil
}

// MustDefine is like NewDefinedUnit but panics on an invalid symbol.
func MustDefine(name, symbol string, dimension Dimension, coefficient, constant float64) DefinedUnit {
	unit, err := NewDefinedUnit(name, symbol, dimension, coefficient, constant)
	if err != nil {
		panic(err)
	}
	return unit
}

func (d DefinedUnit) Name() string         { return d.name }
func (d DefinedUnit) Symbol() string       { return d.symbol }
func (d DefinedUnit) Coefficient() float64 { return d.coefficient }
func (d DefinedUnit) Constant() float64    { return d.constant }

// Dimension returns a copy of the unit's dimension.
func (d DefinedUnit) Dimension() Dimension {
	return d.dimension.clone()
}

// Equal compares symbols only; a Registry guarantees symbols are unique.
func (d DefinedUnit) Equal(other DefinedUnit) bool {
	return d.symbol == other.symbol
}

func (d DefinedUnit) String() string {
	return d.symbol
}
