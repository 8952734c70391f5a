package bigfloat

// Fmod returns the truncated (C fmod) remainder of x/y: a value with the same
// sign as x and magnitude less than |y|, computed by truncating x/y to an
// integer quotient and subtracting y*quotient. fmod(x,0) returns zero
// rather than an error, matching the convention the boundary cases in this
// package's test suite rely on.
//
// The truncated quotient can land one unit off when x/y falls right on a
// rounding boundary at the working precision used to compute it; a bounded
// handful of corrective add/subtract steps (never more than one or two in
// practice) restores both the magnitude and sign invariants afterwards,
// rather than retrying at ever-higher precision.
func Fmod(x, y Number) (Number, error) {
	radix := x.radix
	prec := minInt64(x.prec, y.prec)
	if y.coef.Sign() == 0 || x.coef.Sign() == 0 {
		return Zero(radix).WithPrecision(prec), nil
	}

	workingPrecision := prec
	if workingPrecision == Infinite {
		workingPrecision = maxInt64(digitCount(x.coef, radix), digitCount(y.coef, radix)) + 2*ExtraPrecision
	} else {
		workingPrecision = extendPrecision(workingPrecision)
	}

	q, err := x.WithPrecision(workingPrecision).QuoPrecision(y.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	n := q.Truncate()
	remainder := x.Sub(y.Mul(n))
	yAbs := y.Abs()

	for i := 0; i < 8; i++ {
		if remainder.coef.Sign() != 0 && remainder.Abs().Cmp(yAbs) >= 0 {
			if remainder.coef.Sign() > 0 {
				remainder = remainder.Sub(yAbs)
			} else {
				remainder = remainder.Add(yAbs)
			}
			continue
		}
		if remainder.coef.Sign() != 0 && remainder.coef.Sign() != x.coef.Sign() {
			if x.coef.Sign() > 0 {
				remainder = remainder.Add(yAbs)
			} else {
				remainder = remainder.Sub(yAbs)
			}
			continue
		}
		break
	}

	return remainder.WithPrecision(prec), nil
}

// Modf splits x into its truncated integer part and its signed fractional
// remainder, x == intPart + fracPart.
func Modf(x Number) (intPart, fracPart Number) {
	intPart = x.Truncate()
	fracPart = x.Sub(intPart)
	return intPart, fracPart
}
