package bigfloat

import "math/big"

// PowNumber returns x^y for an arbitrary Number exponent y, rounded to
// targetPrecision digits. An exact integer y delegates entirely to the
// binary-exponentiation Pow in scale.go, which needs no logarithm; every
// other case is computed as exp(y*log(x)), per ApfloatMath.pow(x,y).
func PowNumber(x, y Number, targetPrecision int64) (Number, error) {
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("pow", "target precision must be positive")
	}
	radix := x.radix

	if n, ok := asExactInt(y); ok {
		return Pow(x.WithPrecision(targetPrecision), n)
	}

	if x.coef.Sign() == 0 {
		if y.coef.Sign() <= 0 {
			return Number{}, newArithmeticError("pow", "zero to a non-positive power")
		}
		return Zero(radix).WithPrecision(targetPrecision), nil
	}
	if x.coef.Sign() < 0 {
		return Number{}, newArithmeticError("pow", "negative base to a non-integer power")
	}

	workingPrecision := extendPrecision(targetPrecision)

	lnx, err := Log(x, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	exponent := y.Mul(lnx)

	// Near x=1, log(x) loses digits of precision proportional to how many
	// leading digits x shares with 1; narrowing the exponent to match
	// keeps that loss from silently inflating the apparent precision of
	// the final result, the same two-stage narrowing ApfloatMath.pow(x,y)
	// performs via equalDigits(1,x).
	shared := x.EqualDigits(One(radix))
	narrowed := workingPrecision - shared
	if narrowed < 1 {
		narrowed = 1
	}
	if narrowed < exponent.prec {
		exponent = exponent.WithPrecision(narrowed)
	}

	result, err := Exp(exponent, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	finalPrec := minInt64(targetPrecision, minInt64(y.prec, workingPrecision))
	return result.WithPrecision(finalPrec), nil
}

// asExactInt reports whether y denotes an exact integer value representable
// as an int64, returning it if so.
func asExactInt(y Number) (int64, bool) {
	if y.prec != Infinite || y.scale < 0 {
		return 0, false
	}
	v := new(big.Int).Mul(y.coef, radixPow(y.radix, y.scale))
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}
