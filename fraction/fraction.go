// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package fraction implements reduced rational numbers with 64-bit components.
//
// A Fraction is always in lowest terms with a positive denominator, so the
// sign lives on the numerator and two fractions can be compared with ==.
// The zero value is 0.
package fraction

import (
	"fmt"
	"strconv"
	"strings"
)

type Fraction struct {
	num int64
	den int64 // denominator minus one, so the zero value is 0/1
}

var (
	Zero = Fraction{}
	One  = Fraction{num: 1}
)

// New returns numerator/denominator in lowest terms.
// A zero denominator is a programming error and panics.
func New(numerator, denominator int64) Fraction {
	if denominator == 0 {
		panic("fraction: zero denominator")
	}
	return reduce(numerator, denominator)
}

func FromInt(n int64) Fraction {
	return Fraction{num: n}
}

func reduce(n, d int64) Fraction {
	if n == 0 {
		return Fraction{}
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs(n), d)
	return Fraction{num: n / g, den: d/g - 1}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func (f Fraction) Numerator() int64 {
	return f.num
}

func (f Fraction) Denominator() int64 {
	return f.den + 1
}

func (f Fraction) Add(other Fraction) Fraction {
	return reduce(f.num*other.Denominator()+other.num*f.Denominator(), f.Denominator()*other.Denominator())
}

func (f Fraction) Sub(other Fraction) Fraction {
	return f.Add(other.Neg())
}

func (f Fraction) Mul(other Fraction) Fraction {
	return reduce(f.num*other.num, f.Denominator()*other.Denominator())
}

// Div returns f/other. Dividing by zero panics, as for New.
func (f Fraction) Div(other Fraction) Fraction {
	return New(f.num*other.Denominator(), f.Denominator()*other.num)
}

func (f Fraction) AddInt(n int64) Fraction { return f.Add(FromInt(n)) }
func (f Fraction) SubInt(n int64) Fraction { return f.Sub(FromInt(n)) }
func (f Fraction) MulInt(n int64) Fraction { return f.Mul(FromInt(n)) }
func (f Fraction) DivInt(n int64) Fraction { return f.Div(FromInt(n)) }

func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, den: f.den}
}

func (f Fraction) Abs() Fraction {
	return Fraction{num: abs(f.num), den: f.den}
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	}
	return 0
}

func (f Fraction) IsZero() bool {
	return f.num == 0
}

func (f Fraction) IsInt() bool {
	return f.den == 0
}

// Less compares by cross-multiplication, avoiding floating point error.
func (f Fraction) Less(other Fraction) bool {
	return f.num*other.Denominator() < other.num*f.Denominator()
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than other.
func (f Fraction) Cmp(other Fraction) int {
	switch {
	case f == other:
		return 0
	case f.Less(other):
		return -1
	}
	return 1
}

func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.Denominator())
}

// String renders "n" for integers and "(n|d)" otherwise.
func (f Fraction) String() string {
	if f.IsInt() {
		return strconv.FormatInt(f.num, 10)
	}
	return fmt.Sprintf("(%d|%d)", f.num, f.Denominator())
}

// Parse accepts the forms produced by String: "n" or "(n|d)".
func Parse(input string) (Fraction, bool) {
	if n, err := strconv.ParseInt(input, 10, 64); err == nil {
		return FromInt(n), true
	}

	if !strings.HasPrefix(input, "(") || !strings.HasSuffix(input, ")") {
		return Fraction{}, false
	}
	parts := strings.Split(input[1:len(input)-1], "|")
	if len(parts) != 2 {
		return Fraction{}, false
	}
	n, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Fraction{}, false
	}
	d, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || d == 0 {
		return Fraction{}, false
	}

	return New(n, d), true
}
