// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"maps"
	"strings"

	"unitcalc/equation"
	"unitcalc/fraction"
)

// Quantity is a base physical dimension.
type Quantity int

const (
	Length Quantity = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
	Angle
	Data
	NumQuantity
)

var quantityNames = [NumQuantity]string{
	Length:            "Length",
	Mass:              "Mass",
	Time:              "Time",
	Current:           "Current",
	Temperature:       "Temperature",
	Amount:            "Amount",
	LuminousIntensity: "LuminousIntensity",
	Angle:             "Angle",
	Data:              "Data",
}

func (q Quantity) String() string {
	if q < 0 || q >= NumQuantity {
		return "Quantity(?)"
	}
	return quantityNames[q]
}

// ParseQuantity looks up a quantity by name, ignoring case.
func ParseQuantity(name string) (Quantity, bool) {
	for q, n := range quantityNames {
		if strings.EqualFold(n, name) {
			return Quantity(q), true
		}
	}
	return 0, false
}

// Dimension maps base quantities to their exponents. Zero exponents are never
// stored, so two dimensions are equal iff their maps are equal.
type Dimension map[Quantity]fraction.Fraction

func (d Dimension) Equal(other Dimension) bool {
	return maps.Equal(d, other)
}

func (d Dimension) clone() Dimension {
	result := make(Dimension, len(d))
	for q, e := range d {
		if !e.IsZero() {
			result[q] = e
		}
	}
	return result
}

// String renders the dimension like a unit, e.g. "Length^2*Mass/Time^3".
func (d Dimension) String() string {
	terms := make([]equation.Term[Quantity], 0, len(d))
	for q, e := range d {
		terms = append(terms, equation.Term[Quantity]{Object: q, Exponent: e})
	}
	return equation.Serialize(terms, Quantity.String, false)
}
