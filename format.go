// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"unitcalc/units"
)

// formatValue rounds to precision places, dropping trailing zeros.
func formatValue(v float64, precision int, group bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	rounded := decimal.NewFromFloat(v).Round(int32(precision))
	if group {
		f, _ := rounded.Float64()
		return humanize.Commaf(f)
	}
	return rounded.String()
}

func formatMeasurement(m units.Measurement, precision int, group bool) string {
	text := formatValue(m.Value, precision, group)
	if m.Unit.IsNone() {
		return text
	}
	return text + " " + m.Unit.Symbol()
}
