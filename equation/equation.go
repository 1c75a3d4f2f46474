// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package equation converts between symbol/exponent terms and their textual
// form, e.g. "kg*m^2/s^2".
//
// The codec does not know what the symbols stand for: Serialize takes a label
// function and Deserialize takes a resolver, so the same code renders units by
// symbol or by name and parses into any object type.
package equation

import (
	"cmp"
	"slices"
	"strings"

	"github.com/zeebo/errs"

	"unitcalc/enumerable"
	"unitcalc/fraction"
)

// Error is the class of all malformed equation errors.
var Error = errs.Class("equation")

const (
	multiply = "*"
	divide   = "/"
	power    = "^"
)

// Term is one object raised to an exponent.
type Term[T any] struct {
	Object   T
	Exponent fraction.Fraction
}

func nonZero[T any](term Term[T]) bool {
	return !term.Exponent.IsZero()
}

type labeled struct {
	label    string
	exponent fraction.Fraction
}

// order puts positive exponents first, ascending, then negative exponents by
// ascending magnitude; equal exponents sort by label.
func order(a, b labeled) int {
	as, bs := a.exponent.Sign(), b.exponent.Sign()
	if as != bs {
		return bs - as
	}
	if c := a.exponent.Abs().Cmp(b.exponent.Abs()); c != 0 {
		return c
	}
	return cmp.Compare(a.label, b.label)
}

// Serialize renders terms as an equation. Zero exponents are skipped. With
// spaced set the operators are surrounded by blanks ("meter / second").
func Serialize[T any](terms []Term[T], label func(T) string, spaced bool) string {
	items := enumerable.Map(enumerable.Filter(terms, nonZero[T]), func(term Term[T]) labeled {
		return labeled{label: label(term.Object), exponent: term.Exponent}
	})
	slices.SortFunc(items, order)

	mul, div := multiply, divide
	if spaced {
		mul, div = " "+multiply+" ", " "+divide+" "
	}

	var sb strings.Builder
	for i, item := range items {
		if item.exponent.Sign() > 0 {
			if i > 0 {
				sb.WriteString(mul)
			}
		} else {
			if i == 0 {
				sb.WriteString("1")
			}
			sb.WriteString(div)
		}
		sb.WriteString(item.label)
		if magnitude := item.exponent.Abs(); magnitude != fraction.One {
			sb.WriteString(power + magnitude.String())
		}
	}

	return sb.String()
}

// Deserialize parses an equation, resolving each distinct symbol once.
// Repeated symbols accumulate their exponents and the literal "1" is ignored.
// Terms are returned in order of first appearance, without zero exponents.
func Deserialize[T any](equation string, resolve func(symbol string) (T, error)) ([]Term[T], error) {
	var terms []Term[T]
	index := make(map[string]int)

	for _, chunk := range strings.Split(equation, multiply) {
		for i, part := range strings.Split(chunk, divide) {
			symbol, exponent, err := parseTerm(part, equation)
			if err != nil {
				return nil, err
			}
			if symbol == "1" {
				continue
			}
			if i > 0 {
				exponent = exponent.Neg()
			}

			if at, ok := index[symbol]; ok {
				terms[at].Exponent = terms[at].Exponent.Add(exponent)
				continue
			}

			object, err := resolve(symbol)
			if err != nil {
				return nil, err
			}
			index[symbol] = len(terms)
			terms = append(terms, Term[T]{Object: object, Exponent: exponent})
		}
	}

	return enumerable.Filter(terms, nonZero[T]), nil
}

// Symbols deserializes an equation into a symbol to exponent map.
func Symbols(equation string) (map[string]fraction.Fraction, error) {
	terms, err := Deserialize(equation, func(symbol string) (string, error) { return symbol, nil })
	if err != nil {
		return nil, err
	}

	symbols := make(map[string]fraction.Fraction, len(terms))
	for _, term := range terms {
		symbols[term.Object] = term.Exponent
	}
	return symbols, nil
}

func parseTerm(part, equation string) (string, fraction.Fraction, error) {
	pieces := strings.Split(part, power)
	symbol := strings.TrimSpace(pieces[0])
	if symbol == "" {
		return "", fraction.Zero, Error.New("empty symbol in %q", equation)
	}

	switch len(pieces) {
	case 1:
		return symbol, fraction.One, nil
	case 2:
		text := strings.TrimSpace(pieces[1])
		exponent, ok := fraction.Parse(text)
		if !ok {
			return "", fraction.Zero, Error.New("malformed exponent %q for %q in %q", text, symbol, equation)
		}
		return symbol, exponent, nil
	default:
		return "", fraction.Zero, Error.New("repeated exponent for %q in %q", symbol, equation)
	}
}
