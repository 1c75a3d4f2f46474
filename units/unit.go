// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"cmp"
	"math"
	"slices"

	"unitcalc/enumerable"
	"unitcalc/equation"
	"unitcalc/fraction"
)

// Kind tells which variant a Unit holds.
type Kind int

const (
	KindNone Kind = iota
	KindDefined
	KindComposite
)

type term = equation.Term[DefinedUnit]

// Unit is either no unit, a single DefinedUnit, or a product of defined units
// raised to non-zero exponents.
//
// Every constructor canonicalizes: an empty product is None and a product of a
// single unit to the power 1 is that defined unit. Units are never modified
// after construction.
type Unit struct {
	kind       Kind
	defined    DefinedUnit
	components map[string]term // keyed by symbol, composite only
}

// None is the dimensionless unit.
var None = Unit{}

// Of wraps a defined unit.
func Of(d DefinedUnit) Unit {
	return Unit{kind: KindDefined, defined: d}
}

// Composite returns the canonical unit for the product of terms. Terms with
// the same symbol accumulate.
func Composite(terms ...term) Unit {
	components := make(map[string]term, len(terms))
	for _, t := range terms {
		accumulate(components, t)
	}
	return canonical(components)
}

func accumulate(components map[string]term, t term) {
	symbol := t.Object.symbol
	if existing, ok := components[symbol]; ok {
		existing.Exponent = existing.Exponent.Add(t.Exponent)
		components[symbol] = existing
	} else {
		components[symbol] = t
	}
}

func canonical(components map[string]term) Unit {
	for symbol, t := range components {
		if t.Exponent.IsZero() {
			delete(components, symbol)
		}
	}

	switch len(components) {
	case 0:
		return None
	case 1:
		for _, t := range components {
			if t.Exponent == fraction.One {
				return Of(t.Object)
			}
		}
	}
	return Unit{kind: KindComposite, components: components}
}

func (u Unit) Kind() Kind {
	return u.kind
}

func (u Unit) IsNone() bool {
	return u.kind == KindNone
}

// Defined returns the wrapped unit when u is a single defined unit.
func (u Unit) Defined() (DefinedUnit, bool) {
	return u.defined, u.kind == KindDefined
}

// Terms lists the components sorted by symbol. A defined unit is a single term
// with exponent 1; None has no terms.
func (u Unit) Terms() []term {
	switch u.kind {
	case KindDefined:
		return []term{{Object: u.defined, Exponent: fraction.One}}
	case KindComposite:
		terms := make([]term, 0, len(u.components))
		for _, t := range u.components {
			terms = append(terms, t)
		}
		slices.SortFunc(terms, func(a, b term) int { return cmp.Compare(a.Object.symbol, b.Object.symbol) })
		return terms
	}
	return nil
}

func (u Unit) combine(other Unit, sign fraction.Fraction) Unit {
	components := make(map[string]term)
	for _, t := range u.Terms() {
		accumulate(components, t)
	}
	for _, t := range other.Terms() {
		accumulate(components, term{Object: t.Object, Exponent: t.Exponent.Mul(sign)})
	}
	return canonical(components)
}

// Mul composes two units, summing the exponents of shared components.
func (u Unit) Mul(other Unit) Unit {
	return u.combine(other, fraction.One)
}

func (u Unit) Div(other Unit) Unit {
	return u.combine(other, fraction.FromInt(-1))
}

// Pow multiplies every component exponent by n.
func (u Unit) Pow(n fraction.Fraction) Unit {
	components := make(map[string]term)
	for _, t := range u.Terms() {
		accumulate(components, term{Object: t.Object, Exponent: t.Exponent.Mul(n)})
	}
	return canonical(components)
}

func (u Unit) Inverse() Unit {
	return u.Pow(fraction.FromInt(-1))
}

// Dimension aggregates the components' dimensions weighted by their exponents.
func (u Unit) Dimension() Dimension {
	dimension := enumerable.Reduce(u.Terms(), Dimension{}, func(d Dimension, t term) Dimension {
		for q, e := range t.Object.dimension {
			d[q] = d[q].Add(e.Mul(t.Exponent))
		}
		return d
	})
	return dimension.clone()
}

// IsDimensionallyEquivalent reports whether both units measure the same thing.
func (u Unit) IsDimensionallyEquivalent(other Unit) bool {
	return u.Dimension().Equal(other.Dimension())
}

// coefficient is the scale of a composite unit relative to base units.
// Components with an additive constant cannot be composed.
func (u Unit) coefficient() (float64, error) {
	terms := u.Terms()
	if affine := enumerable.Filter(terms, func(t term) bool { return t.Object.constant != 0 }); len(affine) > 0 {
		return 0, InvalidCompositeUnit.New("%s contains non-linear unit %s", u.Symbol(), affine[0].Object.symbol)
	}

	return enumerable.Reduce(terms, 1.0, func(c float64, t term) float64 {
		return c * math.Pow(t.Object.coefficient, t.Exponent.Float64())
	}), nil
}

// ToBase converts a value in u to the base units of u's dimension.
func (u Unit) ToBase(value float64) (float64, error) {
	switch u.kind {
	case KindDefined:
		return value*u.defined.coefficient + u.defined.constant, nil
	case KindComposite:
		c, err := u.coefficient()
		if err != nil {
			return 0, err
		}
		return value * c, nil
	}
	return value, nil
}

// FromBase is the inverse of ToBase.
func (u Unit) FromBase(value float64) (float64, error) {
	switch u.kind {
	case KindDefined:
		return (value - u.defined.constant) / u.defined.coefficient, nil
	case KindComposite:
		c, err := u.coefficient()
		if err != nil {
			return 0, err
		}
		return value / c, nil
	}
	return value, nil
}

// Symbol is the canonical symbol, e.g. "kg*m^2/s^2"; None has an empty symbol.
func (u Unit) Symbol() string {
	return equation.Serialize(u.Terms(), DefinedUnit.Symbol, false)
}

// Name spells the unit out, e.g. "meter / second".
func (u Unit) Name() string {
	return equation.Serialize(u.Terms(), DefinedUnit.Name, true)
}

func (u Unit) String() string {
	return u.Symbol()
}

// Equal compares representations. Canonicalization makes this the same as
// comparing the units themselves.
func (u Unit) Equal(other Unit) bool {
	if u.kind != other.kind {
		return false
	}

	switch u.kind {
	case KindDefined:
		return u.defined.Equal(other.defined)
	case KindComposite:
		if len(u.components) != len(other.components) {
			return false
		}
		for symbol, t := range u.components {
			o, ok := other.components[symbol]
			if !ok || o.Exponent != t.Exponent {
				return false
			}
		}
	}
	return true
}

// MarshalText encodes the unit as its canonical symbol. Use Registry.ParseUnit
// to decode.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Symbol()), nil
}

// describe is Symbol, with a placeholder for None in messages
func (u Unit) describe() string {
	if u.IsNone() {
		return "(no unit)"
	}
	return u.Symbol()
}
