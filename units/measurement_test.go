// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"testing"
)

func measure(t *testing.T, value float64, symbol string) Measurement {
	t.Helper()
	if symbol == "" {
		return NewMeasurement(value, None)
	}
	return NewMeasurement(value, unit(t, symbol))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func TestMeasurementAddSub(t *testing.T) {
	tests := []struct {
		name     string
		left     Measurement
		right    Measurement
		add, sub float64
		symbol   string
	}{
		{"same unit", measure(t, 5, "m"), measure(t, 3, "m"), 8, 2, "m"},
		{"converted", measure(t, 1, "km"), measure(t, 500, "m"), 1.5, 0.5, "km"},
		{"composite", measure(t, 5, "kW*hr"), measure(t, 1, "kWh"), 6, 4, "hr*kW"},
		{"unitless", measure(t, 2, ""), measure(t, 3, ""), 5, -1, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sum, err := test.left.Add(test.right)
			if err != nil {
				t.Fatalf("Add error: %v", err)
			}
			if !approx(sum.Value, test.add) || sum.Unit.Symbol() != test.symbol {
				t.Errorf("%v + %v = %v, want %v %s", test.left, test.right, sum, test.add, test.symbol)
			}

			diff, err := test.left.Sub(test.right)
			if err != nil {
				t.Fatalf("Sub error: %v", err)
			}
			if !approx(diff.Value, test.sub) || diff.Unit.Symbol() != test.symbol {
				t.Errorf("%v - %v = %v, want %v %s", test.left, test.right, diff, test.sub, test.symbol)
			}
		})
	}
}

func TestMeasurementIncompatible(t *testing.T) {
	if _, err := measure(t, 1, "m").Add(measure(t, 1, "s")); !IncompatibleUnits.Has(err) {
		t.Errorf("m + s error = %v, want IncompatibleUnits", err)
	}
	if _, err := measure(t, 1, "m").Sub(measure(t, 1, "")); !IncompatibleUnits.Has(err) {
		t.Errorf("m - 1 error = %v, want IncompatibleUnits", err)
	}
	if _, err := measure(t, 1, "kg").ConvertTo(unit(t, "lbf")); !IncompatibleUnits.Has(err) {
		t.Errorf("kg -> lbf error = %v, want IncompatibleUnits", err)
	}
}

func TestMeasurementMulDivPow(t *testing.T) {
	product := measure(t, 5, "kW").Mul(measure(t, 2, "hr"))
	if product.Value != 10 || !product.Unit.Equal(unit(t, "kW*hr")) {
		t.Errorf("5 kW * 2 hr = %v, want 10 kW*hr", product)
	}

	quotient := measure(t, 10, "m").Div(measure(t, 4, "s"))
	if quotient.Value != 2.5 || quotient.Unit.Symbol() != "m/s" {
		t.Errorf("10 m / 4 s = %v, want 2.5 m/s", quotient)
	}

	ratio := measure(t, 10, "m").Div(measure(t, 5, "m"))
	if ratio.Value != 2 || !ratio.Unit.IsNone() {
		t.Errorf("10 m / 5 m = %v, want 2", ratio)
	}

	square := measure(t, 3, "m").Pow(2)
	if square.Value != 9 || square.Unit.Symbol() != "m^2" {
		t.Errorf("(3 m)^2 = %v, want 9 m^2", square)
	}

	inverse := measure(t, 4, "s").Pow(-1)
	if inverse.Value != 0.25 || inverse.Unit.Symbol() != "1/s" {
		t.Errorf("(4 s)^-1 = %v, want 0.25 1/s", inverse)
	}
}

func TestMeasurementConvertTo(t *testing.T) {
	m := measure(t, 1, "m")
	same, err := m.ConvertTo(unit(t, "m"))
	if err != nil || !same.Equal(m) {
		t.Errorf("ConvertTo(m) = %v, %v, want %v", same, err, m)
	}

	feet, err := m.ConvertTo(unit(t, "ft"))
	if err != nil {
		t.Fatalf("ConvertTo(ft) error: %v", err)
	}
	if math.Abs(feet.Value-3.28084) > 1e-5 || feet.Unit.Symbol() != "ft" {
		t.Errorf("1 m in ft = %v, want 3.28084 ft", feet)
	}

	if _, err := measure(t, 1, "°C/s").ConvertTo(unit(t, "K/s")); !InvalidCompositeUnit.Has(err) {
		t.Errorf("°C/s -> K/s error = %v, want InvalidCompositeUnit", err)
	}
}

func TestMeasurementString(t *testing.T) {
	tests := []struct {
		input    Measurement
		expected string
	}{
		{measure(t, 10, "kW*hr"), "10 hr*kW"},
		{measure(t, 2.5, "m/s"), "2.5 m/s"},
		{measure(t, 7, ""), "7"},
		{measure(t, 0.125, "1/s"), "0.125 1/s"},
	}

	for _, test := range tests {
		if got := test.input.String(); got != test.expected {
			t.Errorf("String() = %q, want %q", got, test.expected)
		}
	}
}
