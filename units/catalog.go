// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"slices"

	"unitcalc/fraction"
)

func exp(n int64) fraction.Fraction { return fraction.FromInt(n) }

var (
	length      = Dimension{Length: exp(1)}
	area        = Dimension{Length: exp(2)}
	volume      = Dimension{Length: exp(3)}
	mass        = Dimension{Mass: exp(1)}
	duration    = Dimension{Time: exp(1)}
	current     = Dimension{Current: exp(1)}
	temperature = Dimension{Temperature: exp(1)}
	amount      = Dimension{Amount: exp(1)}
	luminosity  = Dimension{LuminousIntensity: exp(1)}
	angle       = Dimension{Angle: exp(1)}
	data        = Dimension{Data: exp(1)}
	speed       = Dimension{Length: exp(1), Time: exp(-1)}
	frequency   = Dimension{Time: exp(-1)}
	force       = Dimension{Mass: exp(1), Length: exp(1), Time: exp(-2)}
	energy      = Dimension{Mass: exp(1), Length: exp(2), Time: exp(-2)}
	power       = Dimension{Mass: exp(1), Length: exp(2), Time: exp(-3)}
	pressure    = Dimension{Mass: exp(1), Length: exp(-1), Time: exp(-2)}
	charge      = Dimension{Current: exp(1), Time: exp(1)}
	voltage     = Dimension{Mass: exp(1), Length: exp(2), Time: exp(-3), Current: exp(-1)}
	resistance  = Dimension{Mass: exp(1), Length: exp(2), Time: exp(-3), Current: exp(-2)}
	dataRate    = Dimension{Data: exp(1), Time: exp(-1)}
)

const (
	inch      = 0.0254     // by definition
	pound     = 0.45359237 // by definition
	usGallon  = 231 * inch * inch * inch
	hour      = 3600.0
	standardG = 9.80665
)

func linear(name, symbol string, dimension Dimension, coefficient float64) DefinedUnit {
	return MustDefine(name, symbol, dimension, coefficient, 0)
}

// catalog is the default set of units. Base units of each dimension have a
// coefficient of 1: meter, kilogram, second, ampere, kelvin, mole, candela,
// radian and bit.
var catalog = []DefinedUnit{
	linear("nanometer", "nm", length, 1e-9),
	linear("micrometer", "um", length, 1e-6),
	linear("millimeter", "mm", length, 1e-3),
	linear("centimeter", "cm", length, 1e-2),
	linear("meter", "m", length, 1),
	linear("kilometer", "km", length, 1e3),
	linear("inch", "in", length, inch),
	linear("foot", "ft", length, 12*inch),
	linear("yard", "yd", length, 36*inch),
	linear("mile", "mi", length, 12*inch*5280),
	linear("nautical mile", "nmi", length, 1852),
	linear("light year", "ly", length, 9460730472580800),

	linear("hectare", "ha", area, 1e4),
	linear("acre", "ac", area, 4046.8564224),

	linear("milliliter", "mL", volume, 1e-6),
	linear("centiliter", "cL", volume, 1e-5),
	linear("deciliter", "dL", volume, 1e-4),
	linear("liter", "L", volume, 1e-3),
	linear("fluid ounce", "floz", volume, usGallon/128),
	linear("cup", "cup", volume, usGallon/16),
	linear("pint", "pt", volume, usGallon/8),
	linear("quart", "qt", volume, usGallon/4),
	linear("gallon", "gal", volume, usGallon),

	linear("microgram", "ug", mass, 1e-9),
	linear("milligram", "mg", mass, 1e-6),
	linear("gram", "g", mass, 1e-3),
	linear("kilogram", "kg", mass, 1),
	linear("tonne", "t", mass, 1e3),
	linear("ounce", "oz", mass, pound/16),
	linear("pound", "lb", mass, pound),
	linear("stone", "st", mass, 14*pound),

	linear("nanosecond", "ns", duration, 1e-9),
	linear("microsecond", "us", duration, 1e-6),
	linear("millisecond", "ms", duration, 1e-3),
	linear("second", "s", duration, 1),
	linear("minute", "min", duration, 60),
	linear("hour", "hr", duration, hour),
	linear("day", "day", duration, 24*hour),
	linear("week", "wk", duration, 7*24*hour),
	linear("year", "yr", duration, 365.25*24*hour),

	linear("milliampere", "mA", current, 1e-3),
	linear("ampere", "A", current, 1),

	linear("kelvin", "K", temperature, 1),
	MustDefine("celsius", "°C", temperature, 1, 273.15),
	MustDefine("fahrenheit", "°F", temperature, 5.0/9.0, 273.15-32*5.0/9.0),
	linear("rankine", "°R", temperature, 5.0/9.0),

	linear("millimole", "mmol", amount, 1e-3),
	linear("mole", "mol", amount, 1),

	linear("candela", "cd", luminosity, 1),

	linear("radian", "rad", angle, 1),
	linear("degree", "deg", angle, math.Pi/180),
	linear("revolution", "rev", angle, 2*math.Pi),

	linear("bit", "bit", data, 1),
	linear("byte", "B", data, 8),
	linear("kilobyte", "kB", data, 8e3),
	linear("megabyte", "MB", data, 8e6),
	linear("gigabyte", "GB", data, 8e9),
	linear("terabyte", "TB", data, 8e12),
	linear("kibibyte", "KiB", data, 8*1024),
	linear("mebibyte", "MiB", data, 8*1024*1024),
	linear("gibibyte", "GiB", data, 8*1024*1024*1024),
	linear("bits per second", "bps", dataRate, 1),
	linear("megabits per second", "Mbps", dataRate, 1e6),

	linear("hertz", "Hz", frequency, 1),
	linear("kilohertz", "kHz", frequency, 1e3),
	linear("megahertz", "MHz", frequency, 1e6),
	linear("gigahertz", "GHz", frequency, 1e9),

	linear("miles per hour", "mph", speed, 12*inch*5280/hour),
	linear("kilometers per hour", "kph", speed, 1e3/hour),
	linear("knot", "kn", speed, 1852/hour),

	linear("newton", "N", force, 1),
	linear("pound force", "lbf", force, pound*standardG),

	linear("joule", "J", energy, 1),
	linear("kilojoule", "kJ", energy, 1e3),
	linear("calorie", "cal", energy, 4.184),
	linear("kilocalorie", "kcal", energy, 4184),
	linear("watt hour", "Wh", energy, hour),
	linear("kilowatt hour", "kWh", energy, 1e3*hour),
	linear("british thermal unit", "BTU", energy, 1055.05585262),

	linear("milliwatt", "mW", power, 1e-3),
	linear("watt", "W", power, 1),
	linear("kilowatt", "kW", power, 1e3),
	linear("megawatt", "MW", power, 1e6),
	linear("horsepower", "hp", power, 745.69987158227022),

	linear("pascal", "Pa", pressure, 1),
	linear("kilopascal", "kPa", pressure, 1e3),
	linear("bar", "bar", pressure, 1e5),
	linear("atmosphere", "atm", pressure, 101325),
	linear("pounds per square inch", "psi", pressure, pound*standardG/(inch*inch)),

	linear("coulomb", "C", charge, 1),
	linear("milliampere hour", "mAh", charge, 1e-3*hour),
	linear("volt", "V", voltage, 1),
	linear("millivolt", "mV", voltage, 1e-3),
	linear("ohm", "ohm", resistance, 1),
}

// Defaults returns a copy of the default catalog.
func Defaults() []DefinedUnit {
	return slices.Clone(catalog)
}
