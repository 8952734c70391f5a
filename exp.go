package bigfloat

import "math"

// maxExpExponent bounds how large (in radix-digit position) an exp
// argument's magnitude may be before it is rejected outright: honoring it
// would mean repeated-squaring a result back up through an unreasonable
// number of range-reduction steps for no value, since any real use of this
// kernel works at a fixed, much smaller working precision.
const maxExpExponent = 18

// Exp returns e^x, rounded to targetPrecision digits.
//
// x is range-reduced by repeated halving until it is smaller in magnitude
// than 1/radix, evaluated there by a direct Taylor series (which converges
// in a handful of terms for such a small argument), then squared back up.
// A final Newton correction against Log launders the round-off the
// repeated squaring accumulates, the same precising-iteration idea
// InverseRootGuess uses. Two underflow shortcuts, both per spec §4.10,
// bypass this machinery entirely for arguments whose magnitude is already
// too small to need it: a deep-underflow case at the extreme edge of the
// scale's own representable range, and a shallower one once x's leading
// digit lies more than half the radix's double-precision digit count below
// the radix point. There 1+x agrees with exp(x) to -2*scaleExponent(x)
// digits, and the result is returned at no more precision than that.
func Exp(x Number, targetPrecision int64) (Number, error) {
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("exp", "target precision must be positive")
	}
	if targetPrecision == Infinite {
		return Number{}, newOperationalError("exp", "exponential is not generally exact")
	}

	radix := x.radix
	if x.coef.Sign() == 0 {
		return One(radix).WithPrecision(targetPrecision), nil
	}
	if scaleExponent(x) > maxExpExponent {
		return Number{}, newOperationalError("exp", "argument too large, result would overflow")
	}
	if scaleExponent(x) <= math.MinInt64/2+ExtraPrecision {
		return One(radix).Add(x).WithPrecision(targetPrecision), nil
	}
	if e := scaleExponent(x); e < -doublePrecision(radix)/2 {
		shallowPrecision := -2 * e
		return One(radix).Add(x.WithPrecision(shallowPrecision)).WithPrecision(minInt64(targetPrecision, shallowPrecision)), nil
	}

	workingPrecision := extendPrecision(targetPrecision)

	reduced := x.WithPrecision(workingPrecision)
	two := NewInt(2, radix)
	threshold := New(1, -1, Infinite, radix)
	shifts := 0
	for reduced.Abs().Cmp(threshold) >= 0 {
		q, err := reduced.QuoPrecision(two, workingPrecision)
		if err != nil {
			return Number{}, err
		}
		reduced = q
		shifts++
	}

	result, err := expTaylor(reduced, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	for i := 0; i < shifts; i++ {
		result = result.Mul(result).WithPrecision(workingPrecision)
	}

	result, err = expNewtonCorrect(result, x, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	return result.WithPrecision(targetPrecision), nil
}

func expTaylor(x Number, workingPrecision int64) (Number, error) {
	radix := x.radix
	sum := One(radix).WithPrecision(workingPrecision)
	term := One(radix).WithPrecision(workingPrecision)
	threshold := -workingPrecision - ExtraPrecision
	for k := int64(1); k < workingPrecision*4+16; k++ {
		term = term.Mul(x)
		var err error
		term, err = term.QuoPrecision(NewInt(k, radix), workingPrecision)
		if err != nil {
			return Number{}, err
		}
		sum = sum.Add(term)
		if term.coef.Sign() == 0 || scaleExponent(term) < threshold {
			break
		}
	}
	return sum, nil
}

// expNewtonCorrect applies one Newton step of y_{k+1} = y_k*(1 + x -
// ln(y_k)) against y (the range-reduced-and-squared-back-up estimate of
// e^x), which converges quadratically once y is already close to e^x.
func expNewtonCorrect(y, x Number, workingPrecision int64) (Number, error) {
	radix := y.radix
	lny, err := Log(y.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	t := One(radix).Add(x.WithPrecision(workingPrecision)).Sub(lny)
	return y.Mul(t).WithPrecision(workingPrecision), nil
}
