// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expression

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEnd tokenKind = iota
	tokenNumber
	tokenUnit
	tokenOpen
	tokenClose
	tokenExponent
	tokenOperator
)

type token struct {
	kind     tokenKind
	text     string
	pos      int
	value    float64
	exponent int
	operator Operator
}

type lexer struct {
	input  string
	pos    int
	tokens []token
}

// tokenize splits input into tokens. Binary operators are only recognized
// with a single blank on each side ("5m + 3m"); anything else that is not a
// number, a parenthesis or an exponent is read as a unit symbol.
func tokenize(input string) ([]token, error) {
	l := &lexer{input: input}

	for l.pos < len(l.input) {
		r, size := l.at(l.pos)
		var err error

		switch {
		case r == utf8.RuneError && size == 1:
			err = UnexpectedCharacter.New("invalid UTF-8 at %d in %q", l.pos, l.input)
		case l.operatorAt(l.pos):
			l.operator()
		case unicode.IsSpace(r):
			l.pos += size
		case r == '(':
			l.emit(token{kind: tokenOpen, text: "(", pos: l.pos})
			l.pos += size
		case r == ')':
			l.emit(token{kind: tokenClose, text: ")", pos: l.pos})
			l.pos += size
		case r == '^':
			err = l.exponent()
		case isDigit(r) || r == '.':
			err = l.number()
		default:
			l.unit()
		}

		if err != nil {
			return nil, err
		}
	}

	l.emit(token{kind: tokenEnd, pos: l.pos})
	return l.tokens, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (l *lexer) at(pos int) (rune, int) {
	if pos >= len(l.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.input[pos:])
}

func (l *lexer) emit(t token) {
	l.tokens = append(l.tokens, t)
}

// operatorAt matches a blank, an operator and a blank
func (l *lexer) operatorAt(pos int) bool {
	before, n1 := l.at(pos)
	if n1 == 0 || !unicode.IsSpace(before) {
		return false
	}
	op, n2 := l.at(pos + n1)
	if _, ok := ParseOperator(string(op)); n2 == 0 || !ok {
		return false
	}
	after, n3 := l.at(pos + n1 + n2)
	return n3 > 0 && unicode.IsSpace(after)
}

func (l *lexer) operator() {
	_, n1 := l.at(l.pos)
	op, n2 := l.at(l.pos + n1)
	_, n3 := l.at(l.pos + n1 + n2)

	operator, _ := ParseOperator(string(op))
	l.emit(token{kind: tokenOperator, text: string(op), pos: l.pos + n1, operator: operator})
	l.pos += n1 + n2 + n3
}

// exponent reads "^" followed by an optionally negative integer
func (l *lexer) exponent() error {
	start := l.pos
	end := start + 1
	if end < len(l.input) && l.input[end] == '-' {
		end++
	}
	for end < len(l.input) && isDigit(rune(l.input[end])) {
		end++
	}

	text := l.input[start+1 : end]
	exponent, err := strconv.Atoi(text)
	if err != nil {
		return UnableToParseExponent.New("%q at %d in %q", l.input[start:end], start, l.input)
	}

	l.emit(token{kind: tokenExponent, text: l.input[start:end], pos: start, exponent: exponent})
	l.pos = end
	return nil
}

// number reads digits with at most one decimal point
func (l *lexer) number() error {
	start := l.pos
	end := start
	for end < len(l.input) && (isDigit(rune(l.input[end])) || l.input[end] == '.') {
		end++
	}

	text := l.input[start:end]
	if strings.Count(text, ".") > 1 {
		return UnableToParseNumber.New("%q at %d in %q", text, start, l.input)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return UnableToParseNumber.New("%q at %d in %q", text, start, l.input)
	}

	l.emit(token{kind: tokenNumber, text: text, pos: start, value: value})
	l.pos = end
	return nil
}

// unit reads up to the next blank or parenthesis. A parenthesis right after
// "^" belongs to a fractional exponent, as in "m^(1|2)". A leading "/" is
// short for "1/", so "4/s" reads as 4 1/s.
func (l *lexer) unit() {
	start := l.pos
	end := start
	for end < len(l.input) {
		r, size := l.at(end)
		if r == '(' && end > start && l.input[end-1] == '^' {
			if close := strings.IndexByte(l.input[end:], ')'); close >= 0 {
				end += close + 1
				continue
			}
		}
		if unicode.IsSpace(r) || r == '(' || r == ')' {
			break
		}
		end += size
	}

	text := l.input[start:end]
	if strings.HasPrefix(text, "/") {
		text = "1" + text
	}
	l.emit(token{kind: tokenUnit, text: text, pos: start})
	l.pos = end
}
