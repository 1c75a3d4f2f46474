// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package expression

import (
	"github.com/zeebo/errs"

	"unitcalc/enumerable"
)

var (
	UnexpectedCharacter   = errs.Class("unexpected character")
	UnableToParseNumber   = errs.Class("unable to parse number")
	UnableToParseExponent = errs.Class("unable to parse exponent")
	InvalidMeasurement    = errs.Class("invalid measurement")
	InvalidExpression     = errs.Class("invalid expression")
)

var parseErrors = []*errs.Class{
	&UnexpectedCharacter,
	&UnableToParseNumber,
	&UnableToParseExponent,
	&InvalidMeasurement,
	&InvalidExpression,
}

// IsParseError reports whether err came from reading malformed text.
func IsParseError(err error) bool {
	return enumerable.Any(parseErrors, func(class *errs.Class) bool { return class.Has(err) })
}
