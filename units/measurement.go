// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"strconv"

	"unitcalc/fraction"
)

// Measurement is a value in a unit.
type Measurement struct {
	Value float64
	Unit  Unit
}

func NewMeasurement(value float64, unit Unit) Measurement {
	return Measurement{Value: value, Unit: unit}
}

// Add converts other into m's unit and adds the values.
func (m Measurement) Add(other Measurement) (Measurement, error) {
	converted, err := other.ConvertTo(m.Unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value + converted.Value, Unit: m.Unit}, nil
}

// Sub converts other into m's unit and subtracts the values.
func (m Measurement) Sub(other Measurement) (Measurement, error) {
	converted, err := other.ConvertTo(m.Unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value - converted.Value, Unit: m.Unit}, nil
}

func (m Measurement) Mul(other Measurement) Measurement {
	return Measurement{Value: m.Value * other.Value, Unit: m.Unit.Mul(other.Unit)}
}

func (m Measurement) Div(other Measurement) Measurement {
	return Measurement{Value: m.Value / other.Value, Unit: m.Unit.Div(other.Unit)}
}

func (m Measurement) Pow(n int) Measurement {
	return Measurement{Value: math.Pow(m.Value, float64(n)), Unit: m.Unit.Pow(fraction.FromInt(int64(n)))}
}

// ConvertTo expresses m in another unit of the same dimension.
func (m Measurement) ConvertTo(to Unit) (Measurement, error) {
	if m.Unit.Equal(to) {
		return m, nil
	}
	if !m.Unit.IsDimensionallyEquivalent(to) {
		return Measurement{}, IncompatibleUnits.New("cannot convert %s [%s] to %s [%s]",
			m.Unit.describe(), m.Unit.Dimension(), to.describe(), to.Dimension())
	}

	base, err := m.Unit.ToBase(m.Value)
	if err != nil {
		return Measurement{}, err
	}
	value, err := to.FromBase(base)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Value: value, Unit: to}, nil
}

func (m Measurement) Equal(other Measurement) bool {
	return m.Value == other.Value && m.Unit.Equal(other.Unit)
}

// String renders the measurement in a form the expression parser reads back,
// e.g. "10 hr*kW".
func (m Measurement) String() string {
	value := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Unit.IsNone() {
		return value
	}
	return value + " " + m.Unit.Symbol()
}
