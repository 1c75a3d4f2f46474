// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expression

import (
	"slices"
	"testing"
)

func kinds(tokens []token) []tokenKind {
	result := make([]tokenKind, len(tokens))
	for i, t := range tokens {
		result[i] = t.kind
	}
	return result
}

func texts(tokens []token) []string {
	result := make([]string, len(tokens))
	for i, t := range tokens {
		result[i] = t.text
	}
	return result
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		kinds []tokenKind
		texts []string
	}{
		{"5", []tokenKind{tokenNumber, tokenEnd}, []string{"5", ""}},
		{"5kW*hr", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"5", "kW*hr", ""}},
		{"5 kW", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"5", "kW", ""}},
		{"5m + 3m", []tokenKind{tokenNumber, tokenUnit, tokenOperator, tokenNumber, tokenUnit, tokenEnd},
			[]string{"5", "m", "+", "3", "m", ""}},
		{"5m+3m", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"5", "m+3m", ""}},
		{"(3m)^2", []tokenKind{tokenOpen, tokenNumber, tokenUnit, tokenClose, tokenExponent, tokenEnd},
			[]string{"(", "3", "m", ")", "^2", ""}},
		{"3m^2", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"3", "m^2", ""}},
		{"5^-2", []tokenKind{tokenNumber, tokenExponent, tokenEnd}, []string{"5", "^-2", ""}},
		{"4/s", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"4", "1/s", ""}},
		{"  2  *  3 ", []tokenKind{tokenNumber, tokenOperator, tokenNumber, tokenEnd}, []string{"2", "*", "3", ""}},
		{"1 - 2 / 3", []tokenKind{tokenNumber, tokenOperator, tokenNumber, tokenOperator, tokenNumber, tokenEnd},
			[]string{"1", "-", "2", "/", "3", ""}},
		{"20 °C", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"20", "°C", ""}},
		{"4 m^(1|2)", []tokenKind{tokenNumber, tokenUnit, tokenEnd}, []string{"4", "m^(1|2)", ""}},
		{"(2 m^(1|2))", []tokenKind{tokenOpen, tokenNumber, tokenUnit, tokenClose, tokenEnd},
			[]string{"(", "2", "m^(1|2)", ")", ""}},
		{".5", []tokenKind{tokenNumber, tokenEnd}, []string{".5", ""}},
		{"", []tokenKind{tokenEnd}, []string{""}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := tokenize(test.input)
			if err != nil {
				t.Fatalf("tokenize(%q) error: %v", test.input, err)
			}
			if got := kinds(tokens); !slices.Equal(got, test.kinds) {
				t.Errorf("tokenize(%q) kinds = %v, want %v", test.input, got, test.kinds)
			}
			if got := texts(tokens); !slices.Equal(got, test.texts) {
				t.Errorf("tokenize(%q) texts = %q, want %q", test.input, got, test.texts)
			}
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens, err := tokenize("2.5m ^-3 * 4")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if tokens[0].value != 2.5 {
		t.Errorf("number value = %v, want 2.5", tokens[0].value)
	}
	if tokens[2].exponent != -3 {
		t.Errorf("exponent = %d, want -3", tokens[2].exponent)
	}
	if tokens[3].operator != Multiply || tokens[3].pos != 9 {
		t.Errorf("operator = %v at %d, want * at 9", tokens[3].operator, tokens[3].pos)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		check func(error) bool
	}{
		{"1.2.3", UnableToParseNumber.Has},
		{".", UnableToParseNumber.Has},
		{"(2m)^", UnableToParseExponent.Has},
		{"(2m)^x", UnableToParseExponent.Has},
		{"5 \xff", UnexpectedCharacter.Has},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := tokenize(test.input)
			if !test.check(err) {
				t.Errorf("tokenize(%q) error = %v", test.input, err)
			}
			if !IsParseError(err) {
				t.Errorf("IsParseError(%v) = false", err)
			}
		})
	}
}
