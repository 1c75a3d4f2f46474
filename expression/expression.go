// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package expression parses and evaluates arithmetic over measurements, e.g.
// "5kW*hr + 3kW * 2hr".
//
// Exponents bind tightest, then multiplication and division, then addition
// and subtraction; operators of equal precedence apply left to right.
package expression

import (
	"slices"
	"strconv"
	"strings"

	"unitcalc/units"
)

type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

var operatorSymbols = [...]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[o]
}

func ParseOperator(symbol string) (Operator, bool) {
	for o, s := range operatorSymbols {
		if s == symbol {
			return Operator(o), true
		}
	}
	return 0, false
}

// node holds either a measurement or a parenthesized sub-expression
type node struct {
	measurement units.Measurement
	sub         *Expression
	exponent    int
	hasExponent bool
}

// Expression is a list of nodes joined by operators: ops[i] joins nodes[i]
// and nodes[i+1]. It is not safe for concurrent use; Copy it instead.
type Expression struct {
	nodes []node
	ops   []Operator
}

// New starts an expression with a single measurement.
func New(m units.Measurement) *Expression {
	return &Expression{nodes: []node{{measurement: m}}}
}

func (e *Expression) add(op Operator, n node) {
	if len(e.nodes) > 0 {
		e.ops = append(e.ops, op)
	}
	e.nodes = append(e.nodes, n)
}

// Append joins a measurement to the end of the expression with op.
func (e *Expression) Append(op Operator, m units.Measurement) *Expression {
	e.add(op, node{measurement: m})
	return e
}

// AppendExpression joins a copy of sub, as if parenthesized.
func (e *Expression) AppendExpression(op Operator, sub *Expression) *Expression {
	e.add(op, node{sub: sub.Copy()})
	return e
}

// SetExponent raises the last node to the integer power n.
func (e *Expression) SetExponent(n int) error {
	if len(e.nodes) == 0 {
		return InvalidExpression.New("exponent %d without a value", n)
	}
	last := &e.nodes[len(e.nodes)-1]
	last.exponent, last.hasExponent = n, true
	return nil
}

func (e *Expression) Len() int {
	return len(e.nodes)
}

// Copy returns a deep copy.
func (e *Expression) Copy() *Expression {
	c := &Expression{
		nodes: slices.Clone(e.nodes),
		ops:   slices.Clone(e.ops),
	}
	for i, n := range c.nodes {
		if n.sub != nil {
			c.nodes[i].sub = n.sub.Copy()
		}
	}
	return c
}

// Tracer observes each step of a solve: the operator ("^" for exponents),
// its operands and the result.
type Tracer func(op string, left, right, result units.Measurement)

// Solve evaluates a copy of the expression, leaving e untouched.
func (e *Expression) Solve() (units.Measurement, error) {
	return e.Copy().reduce(nil)
}

// SolveTraced is Solve, reporting each step to trace.
func (e *Expression) SolveTraced(trace Tracer) (units.Measurement, error) {
	return e.Copy().reduce(trace)
}

// remove splices out node i and the operator joining it to node i-1
func (e *Expression) remove(i int) {
	e.nodes = slices.Delete(e.nodes, i, i+1)
	e.ops = slices.Delete(e.ops, i-1, i)
}

// reduce evaluates the expression in place, one precedence level per pass.
func (e *Expression) reduce(trace Tracer) (units.Measurement, error) {
	if trace == nil {
		trace = func(string, units.Measurement, units.Measurement, units.Measurement) {}
	}
	if len(e.nodes) == 0 {
		return units.Measurement{}, InvalidExpression.New("empty expression")
	}

	for i := range e.nodes {
		if sub := e.nodes[i].sub; sub != nil {
			m, err := sub.reduce(trace)
			if err != nil {
				return units.Measurement{}, err
			}
			e.nodes[i].measurement, e.nodes[i].sub = m, nil
		}
	}

	for i := range e.nodes {
		if n := &e.nodes[i]; n.hasExponent {
			result := n.measurement.Pow(n.exponent)
			trace("^", n.measurement, units.NewMeasurement(float64(n.exponent), units.None), result)
			n.measurement, n.hasExponent = result, false
		}
	}

	for i := 0; i < len(e.ops); {
		left, right := e.nodes[i].measurement, e.nodes[i+1].measurement
		var result units.Measurement
		switch e.ops[i] {
		case Multiply:
			result = left.Mul(right)
		case Divide:
			result = left.Div(right)
		default:
			i++
			continue
		}
		trace(e.ops[i].String(), left, right, result)
		e.nodes[i].measurement = result
		e.remove(i + 1)
	}

	for len(e.ops) > 0 {
		left, right := e.nodes[0].measurement, e.nodes[1].measurement
		var result units.Measurement
		var err error
		switch e.ops[0] {
		case Add:
			result, err = left.Add(right)
		case Subtract:
			result, err = left.Sub(right)
		default:
			return units.Measurement{}, InvalidExpression.New("unexpected operator %q", e.ops[0])
		}
		if err != nil {
			return units.Measurement{}, err
		}
		trace(e.ops[0].String(), left, right, result)
		e.nodes[0].measurement = result
		e.remove(1)
	}

	if len(e.nodes) != 1 {
		return units.Measurement{}, InvalidExpression.New("%d values left after solving", len(e.nodes))
	}
	return e.nodes[0].measurement, nil
}

// String renders the expression in a form Parse reads back.
func (e *Expression) String() string {
	var sb strings.Builder
	for i, n := range e.nodes {
		if i > 0 {
			sb.WriteString(" " + e.ops[i-1].String() + " ")
		}

		if n.sub != nil {
			sb.WriteString("(" + n.sub.String() + ")")
		} else {
			sb.WriteString(describe(n.measurement))
		}

		if n.hasExponent {
			if n.sub == nil && !n.measurement.Unit.IsNone() {
				sb.WriteString(" ")
			}
			sb.WriteString("^" + strconv.Itoa(n.exponent))
		}
	}
	return sb.String()
}

// describe writes "1/s" units as "/s", since "1" would read as a number
func describe(m units.Measurement) string {
	value := strconv.FormatFloat(m.Value, 'f', -1, 64)
	symbol := m.Unit.Symbol()
	switch {
	case symbol == "":
		return value
	case strings.HasPrefix(symbol, "1/"):
		return value + symbol[1:]
	}
	return value + " " + symbol
}

// Equal compares structure, operators and measurements.
func (e *Expression) Equal(other *Expression) bool {
	if len(e.nodes) != len(other.nodes) || !slices.Equal(e.ops, other.ops) {
		return false
	}

	for i, n := range e.nodes {
		o := other.nodes[i]
		if n.hasExponent != o.hasExponent || n.exponent != o.exponent || (n.sub == nil) != (o.sub == nil) {
			return false
		}
		if n.sub != nil {
			if !n.sub.Equal(o.sub) {
				return false
			}
		} else if !n.measurement.Equal(o.measurement) {
			return false
		}
	}
	return true
}
