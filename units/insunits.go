package units

// insUnitFactors maps the drawing-level insertion-units code to the factor
// converting one drawing unit to millimeters. Code 0 (unitless) is absent on
// purpose: the header estimator must produce nothing rather than guess.
var insUnitFactors = map[int]float64{
	1:  25.4,                  // inch
	2:  304.8,                 // foot
	3:  1.609e6,               // mile
	4:  1.0,                   // millimeter
	5:  10.0,                  // centimeter
	6:  1000.0,                // meter
	7:  1.0e6,                 // kilometer
	8:  25.4 / 1e6,            // microinch
	9:  0.001,                 // mil
	10: 914.4,                 // yard
	11: 0.0000254,             // angstrom
	12: 0.000001,              // nanometer
	13: 0.001,                 // micron
	14: 100.0,                 // decimeter
	15: 10000.0,               // decameter
	16: 100000.0,              // hectometer
	17: 1e12,                  // gigameter
	18: 1.495978707e14,        // astronomical unit
	19: 9.4607304725808e18,    // light year
	20: 3.08567758146719e19,   // parsec
}

// HeaderFactor returns the millimeter factor for an insertion-units code.
// ok is false for code 0 and for unrecognized codes; callers must propagate
// that absence instead of defaulting to 1.0.
func HeaderFactor(code int) (factor float64, ok bool) {
	factor, ok = insUnitFactors[code]
	return factor, ok
}
