// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "github.com/zeebo/errs"

// Error classes. Use Has to branch on the kind of a returned error, e.g.
// units.UnitNotFound.Has(err).
var (
	InvalidSymbol        = errs.Class("invalid symbol")
	UnitNotFound         = errs.Class("unit not found")
	IncompatibleUnits    = errs.Class("incompatible units")
	InvalidCompositeUnit = errs.Class("invalid composite unit")
	DuplicateUnit        = errs.Class("duplicate unit")
)
