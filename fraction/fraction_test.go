// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package fraction

import (
	"fmt"
	"math"
	"testing"
)

func TestNewReduces(t *testing.T) {
	tests := []struct {
		n, d         int64
		wantN, wantD int64
	}{
		{5, 10, 1, 2},
		{-6, 8, -3, 4},
		{6, -8, -3, 4},
		{-6, -8, 3, 4},
		{0, 5, 0, 1},
		{0, -5, 0, 1},
		{7, 1, 7, 1},
		{12, 4, 3, 1},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d/%d", test.n, test.d), func(t *testing.T) {
			f := New(test.n, test.d)
			if f.Numerator() != test.wantN || f.Denominator() != test.wantD {
				t.Errorf("New(%d, %d) = %d/%d, want %d/%d", test.n, test.d,
					f.Numerator(), f.Denominator(), test.wantN, test.wantD)
			}
		})
	}
}

func TestLowestTerms(t *testing.T) {
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			if n == 0 || d == 0 {
				continue
			}
			f := New(n, d)
			if g := gcd(abs(f.Numerator()), f.Denominator()); g != 1 {
				t.Errorf("New(%d, %d) = %v has gcd %d", n, d, f, g)
			}
		}
	}

	if New(5, 10) != New(1, 2) {
		t.Errorf("New(5, 10) != New(1, 2)")
	}
}

func TestZeroValue(t *testing.T) {
	var f Fraction
	if f != Zero || f.Denominator() != 1 || !f.IsZero() {
		t.Errorf("zero value = %v, want 0", f)
	}
	if New(0, 3) != f {
		t.Errorf("New(0, 3) != zero value")
	}
}

func TestZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New(1, 0) did not panic")
		}
	}()
	New(1, 0)
}

func TestArithmetic(t *testing.T) {
	half := New(1, 2)
	third := New(1, 3)

	tests := []struct {
		name     string
		got      Fraction
		expected Fraction
	}{
		{"add", half.Add(third), New(5, 6)},
		{"sub", half.Sub(third), New(1, 6)},
		{"sub negative", third.Sub(half), New(-1, 6)},
		{"mul", half.Mul(third), New(1, 6)},
		{"div", half.Div(third), New(3, 2)},
		{"add int", half.AddInt(1), New(3, 2)},
		{"sub int", half.SubInt(1), New(-1, 2)},
		{"mul int", third.MulInt(3), One},
		{"div int", half.DivInt(-2), New(-1, 4)},
		{"neg", half.Neg(), New(-1, 2)},
		{"abs", New(-3, 4).Abs(), New(3, 4)},
		{"cancel", half.Sub(half), Zero},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.got != test.expected {
				t.Errorf("%s = %v, want %v", test.name, test.got, test.expected)
			}
		})
	}
}

func TestComparison(t *testing.T) {
	tests := []struct {
		a, b Fraction
		cmp  int
	}{
		{New(1, 3), New(1, 2), -1},
		{New(1, 2), New(2, 4), 0},
		{New(-1, 2), New(-1, 3), -1},
		{FromInt(2), New(3, 2), 1},
		{Zero, New(-1, 1000), 1},
	}

	for _, test := range tests {
		if got := test.a.Cmp(test.b); got != test.cmp {
			t.Errorf("%v.Cmp(%v) = %d, want %d", test.a, test.b, got, test.cmp)
		}
		if got := test.a.Less(test.b); got != (test.cmp < 0) {
			t.Errorf("%v.Less(%v) = %v, want %v", test.a, test.b, got, test.cmp < 0)
		}
	}
}

func TestSign(t *testing.T) {
	if New(-1, 2).Sign() != -1 || New(1, -2).Sign() != -1 || New(-1, -2).Sign() != 1 || Zero.Sign() != 0 {
		t.Errorf("unexpected sign")
	}
}

func TestFloat64(t *testing.T) {
	if got := New(1, 4).Float64(); got != 0.25 {
		t.Errorf("Float64(1/4) = %v, want 0.25", got)
	}
	if got := New(-2, 3).Float64(); math.Abs(got+2.0/3.0) > 1e-15 {
		t.Errorf("Float64(-2/3) = %v, want %v", got, -2.0/3.0)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input    Fraction
		expected string
	}{
		{FromInt(3), "3"},
		{FromInt(-3), "-3"},
		{Zero, "0"},
		{New(1, 2), "(1|2)"},
		{New(1, -2), "(-1|2)"},
		{New(-4, -6), "(2|3)"},
	}

	for _, test := range tests {
		if got := test.input.String(); got != test.expected {
			t.Errorf("String(%d/%d) = %q, want %q", test.input.Numerator(), test.input.Denominator(), got, test.expected)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Fraction
		valid    bool
	}{
		{"3", FromInt(3), true},
		{"-12", FromInt(-12), true},
		{"0", Zero, true},
		{"(1|2)", New(1, 2), true},
		{"(2|4)", New(1, 2), true},
		{"(-1|2)", New(-1, 2), true},
		{"(1|-2)", New(-1, 2), true},
		{"(6|3)", FromInt(2), true},

		{"", Zero, false},
		{"1.5", Zero, false},
		{"1/2", Zero, false},
		{"(1|0)", Zero, false},
		{"(1|2", Zero, false},
		{"(1|2|3)", Zero, false},
		{"(a|2)", Zero, false},
		{" 3", Zero, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, ok := Parse(test.input)
			if ok != test.valid {
				t.Fatalf("Parse(%q) validity = %v, want %v", test.input, ok, test.valid)
			}
			if ok && got != test.expected {
				t.Errorf("Parse(%q) = %v, want %v", test.input, got, test.expected)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for n := int64(-6); n <= 6; n++ {
		for d := int64(1); d <= 6; d++ {
			f := New(n, d)
			got, ok := Parse(f.String())
			if !ok || got != f {
				t.Errorf("Parse(%q) = %v, %v, want %v", f.String(), got, ok, f)
			}
		}
	}
}
