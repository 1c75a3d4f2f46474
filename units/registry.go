// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"cmp"
	"slices"

	"unitcalc/equation"
)

// Registry resolves defined units by symbol or name. It is read-only once
// built and may be shared between goroutines.
type Registry struct {
	bySymbol map[string]DefinedUnit
	byName   map[string]DefinedUnit
}

// Builder collects units for a Registry.
type Builder struct {
	units []DefinedUnit
}

// NewBuilder returns a builder preloaded with the default catalog.
func NewBuilder() *Builder {
	return &Builder{units: Defaults()}
}

// NewEmptyBuilder returns a builder without any units.
func NewEmptyBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Add(units ...DefinedUnit) *Builder {
	b.units = append(b.units, units...)
	return b
}

// Build fails with DuplicateUnit if two units share a symbol or a name.
func (b *Builder) Build() (*Registry, error) {
	r := &Registry{
		bySymbol: make(map[string]DefinedUnit, len(b.units)),
		byName:   make(map[string]DefinedUnit, len(b.units)),
	}

	for _, unit := range b.units {
		if existing, ok := r.bySymbol[unit.symbol]; ok {
			return nil, DuplicateUnit.New("symbol %q used by both %q and %q", unit.symbol, existing.name, unit.name)
		}
		if existing, ok := r.byName[unit.name]; ok {
			return nil, DuplicateUnit.New("name %q used by both %q and %q", unit.name, existing.symbol, unit.symbol)
		}
		r.bySymbol[unit.symbol] = unit
		r.byName[unit.name] = unit
	}

	return r, nil
}

// MustBuild panics if the builder holds duplicates. It is meant for catalogs
// fixed at compile time, where a duplicate is a programming error.
func MustBuild(b *Builder) *Registry {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// NewDefaultRegistry builds a registry holding only the default catalog.
func NewDefaultRegistry() *Registry {
	return MustBuild(NewBuilder())
}

func (r *Registry) UnitBySymbol(symbol string) (DefinedUnit, error) {
	if unit, ok := r.bySymbol[symbol]; ok {
		return unit, nil
	}
	return DefinedUnit{}, UnitNotFound.New("no unit with symbol %q", symbol)
}

func (r *Registry) UnitByName(name string) (DefinedUnit, error) {
	if unit, ok := r.byName[name]; ok {
		return unit, nil
	}
	return DefinedUnit{}, UnitNotFound.New("no unit named %q", name)
}

// CompositeUnitsFromSymbol splits a symbol like "kg*m/s^2" into its
// components and resolves each one.
func (r *Registry) CompositeUnitsFromSymbol(symbol string) ([]equation.Term[DefinedUnit], error) {
	return equation.Deserialize(symbol, r.UnitBySymbol)
}

// Unit resolves a simple or composite symbol to a canonical Unit.
func (r *Registry) Unit(symbol string) (Unit, error) {
	if unit, ok := r.bySymbol[symbol]; ok {
		return Of(unit), nil
	}

	terms, err := r.CompositeUnitsFromSymbol(symbol)
	if err != nil {
		return None, err
	}
	return Composite(terms...), nil
}

// ParseUnit decodes the text produced by Unit.MarshalText.
func (r *Registry) ParseUnit(text []byte) (Unit, error) {
	if len(text) == 0 {
		return None, nil
	}
	return r.Unit(string(text))
}

// Units lists the registered units ordered by symbol.
func (r *Registry) Units() []DefinedUnit {
	units := make([]DefinedUnit, 0, len(r.bySymbol))
	for _, unit := range r.bySymbol {
		units = append(units, unit)
	}
	slices.SortFunc(units, func(a, b DefinedUnit) int { return cmp.Compare(a.symbol, b.symbol) })
	return units
}

func (r *Registry) Len() int {
	return len(r.bySymbol)
}
