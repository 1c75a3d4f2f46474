// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expression

import (
	"fmt"

	"github.com/zeebo/errs"

	"unitcalc/units"
)

type parser struct {
	registry *units.Registry
	input    string
	tokens   []token
	pos      int
}

func newParser(registry *units.Registry, input string) (*parser, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return &parser{registry: registry, input: input, tokens: tokens}, nil
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEnd {
		p.pos++
	}
	return t
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

// measurement reads a number and the unit directly following it, if any
func (p *parser) measurement(number token, class *errs.Class) (units.Measurement, error) {
	if p.peek().kind != tokenUnit {
		return units.NewMeasurement(number.value, units.None), nil
	}

	symbol := p.next()
	unit, err := p.registry.Unit(symbol.text)
	if err != nil {
		return units.Measurement{}, class.Wrap(fmt.Errorf("unit %q at %d in %q: %w", symbol.text, symbol.pos, p.input, err))
	}
	return units.NewMeasurement(number.value, unit), nil
}

// ParseMeasurement reads "number [unit]", e.g. "9.8 m/s^2".
func ParseMeasurement(registry *units.Registry, input string) (units.Measurement, error) {
	p, err := newParser(registry, input)
	if err != nil {
		return units.Measurement{}, err
	}

	number := p.next()
	if number.kind != tokenNumber {
		return units.Measurement{}, InvalidMeasurement.New("expected a number at %d in %q", number.pos, input)
	}

	m, err := p.measurement(number, &InvalidMeasurement)
	if err != nil {
		return units.Measurement{}, err
	}

	if extra := p.next(); extra.kind != tokenEnd {
		return units.Measurement{}, UnexpectedCharacter.New("%q at %d in %q", extra.text, extra.pos, input)
	}
	return m, nil
}

// Parse reads an expression such as "(3m)^2 + 4 m^2". Binary operators must
// have a single blank on each side.
func Parse(registry *units.Registry, input string) (*Expression, error) {
	p, err := newParser(registry, input)
	if err != nil {
		return nil, err
	}
	return p.expression(false)
}

func (p *parser) fail(format string, args ...any) error {
	return InvalidExpression.New("%s in %q", fmt.Sprintf(format, args...), p.input)
}

func (p *parser) expression(nested bool) (*Expression, error) {
	e := &Expression{}
	var pending Operator
	hasOperator := false

	join := func(t token, n node) error {
		if e.Len() > 0 && !hasOperator {
			return p.fail("missing operator before %q at %d", t.text, t.pos)
		}
		e.add(pending, n)
		hasOperator = false
		return nil
	}

	for {
		t := p.next()

		switch t.kind {
		case tokenNumber:
			m, err := p.measurement(t, &InvalidExpression)
			if err != nil {
				return nil, err
			}
			if err := join(t, node{measurement: m}); err != nil {
				return nil, err
			}

		case tokenUnit:
			return nil, p.fail("unit %q at %d without a value", t.text, t.pos)

		case tokenOpen:
			sub, err := p.expression(true)
			if err != nil {
				return nil, err
			}
			if err := join(t, node{sub: sub}); err != nil {
				return nil, err
			}

		case tokenExponent:
			if e.Len() == 0 || hasOperator {
				return nil, p.fail("exponent %q at %d does not follow a value", t.text, t.pos)
			}
			if e.nodes[e.Len()-1].hasExponent {
				return nil, p.fail("second exponent %q at %d", t.text, t.pos)
			}
			last := &e.nodes[e.Len()-1]
			last.exponent, last.hasExponent = t.exponent, true

		case tokenOperator:
			if e.Len() == 0 || hasOperator {
				return nil, p.fail("operator %q at %d does not follow a value", t.text, t.pos)
			}
			pending, hasOperator = t.operator, true

		case tokenClose:
			if !nested {
				return nil, p.fail("unmatched ')' at %d", t.pos)
			}
			if err := p.complete(e, hasOperator, t); err != nil {
				return nil, err
			}
			return e, nil

		case tokenEnd:
			if nested {
				return nil, p.fail("unmatched parenthesis")
			}
			if err := p.complete(e, hasOperator, t); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
}

func (p *parser) complete(e *Expression, hasOperator bool, t token) error {
	switch {
	case e.Len() == 0:
		return p.fail("no value before %d", t.pos)
	case hasOperator:
		return p.fail("expression ends with an operator at %d", t.pos)
	}
	return nil
}
