package bigfloat

import (
	"math"
	"math/big"
)

// InverseRoot returns x^(-1/n), rounded to x's own tracked precision. It is
// the kernel's central primitive: general roots, reciprocals, and the pi engine's repeated inverse-square-root all route through it.
func InverseRoot(x Number, n int64) (Number, error) {
	return InverseRootPrecision(x, n, x.prec)
}

// InverseRootPrecision returns x^(-1/n) rounded to targetPrecision digits.
func InverseRootPrecision(x Number, n, targetPrecision int64) (Number, error) {
	return InverseRootGuess(x, n, targetPrecision, Number{})
}

// InverseRootGuess returns x^(-1/n) rounded to targetPrecision digits. If
// initialGuess is not the zero Number{}, it is used as the Newton seed in
// place of one derived from x via a native float64 approximation — the
// shortcut the pi engine (pi.go) relies on to carry an inverse square root
// forward across an incremental precision extension instead of reseeding.
func InverseRootGuess(x Number, n, targetPrecision int64, initialGuess Number) (Number, error) {
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("inverseRoot", "target precision must be positive")
	}
	if targetPrecision == Infinite {
		return Number{}, newOperationalError("inverseRoot", "inverse root is not generally exact")
	}
	if n == 0 {
		return Number{}, newArithmeticError("inverseRoot", "zeroth inverse root is undefined")
	}
	if x.coef.Sign() == 0 {
		return Number{}, newArithmeticError("inverseRoot", "inverse root of zero")
	}

	if n == math.MinInt64 {
		// -n doesn't fit in int64; split the index in half and compose two
		// inverse-square-root-like steps instead.
		half, err := InverseRootPrecision(x, n/2, extendPrecision(targetPrecision))
		if err != nil {
			return Number{}, err
		}
		return RootPrecision(half, 2, targetPrecision)
	}
	if n < 0 {
		return RootPrecision(x, -n, targetPrecision)
	}
	if x.coef.Sign() < 0 && n%2 == 0 {
		return Number{}, newArithmeticError("inverseRoot", "even inverse root of a negative number")
	}
	if n == 1 {
		return One(x.radix).QuoPrecision(x, targetPrecision)
	}

	radix := x.radix
	workingPrecision := extendPrecision(targetPrecision)

	y := initialGuess
	if y.isAbsent() {
		y = inverseRootSeed(x, n)
	}
	seedPrecision := minInt64(doublePrecision(radix), workingPrecision)
	y = y.WithPrecision(seedPrecision)

	one := One(radix)
	nNumber := NewInt(n, radix)

	// Double the working precision each iteration (quadratic convergence).
	// The last, full-precision step is the precising iteration: it is run
	// twice back to back, so the second run corrects the round-off the
	// first one leaves in the trailing digits.
	var steps []int64
	for p := seedPrecision; p < workingPrecision; p *= 2 {
		steps = append(steps, minInt64(p*2, workingPrecision))
	}
	if len(steps) == 0 {
		steps = []int64{workingPrecision}
	}
	steps = append(steps, steps[len(steps)-1])

	for _, p := range steps {
		y = y.WithPrecision(p)
		yn, err := Pow(y, n)
		if err != nil {
			return Number{}, err
		}
		t := one.Sub(x.WithPrecision(p).Mul(yn))
		correction := y.Mul(t)
		correction, err = correction.QuoPrecision(nNumber, p)
		if err != nil {
			return Number{}, err
		}
		y = y.Add(correction).WithPrecision(p)
	}

	return y.WithPrecision(targetPrecision), nil
}

// inverseRootSeed derives a double-precision Newton starting point for
// x^(-1/n). It decomposes x's radix exponent into a quotient and remainder
// against n (scaleQuot, scaleRem) so that the remainder's contribution to
// the seed is applied as a bounded fractional power radix^(-scaleRem/n)
// rather than by ever materializing radix^scaleRem itself, which could be
// astronomically large; the exact integer scaleQuot is then reapplied to
// the result exactly, via Scale.
func inverseRootSeed(x Number, n int64) Number {
	radix := x.radix
	seedDigits := doublePrecision(radix) + 4
	reduced := x.Abs().WithPrecision(seedDigits)

	c, _ := new(big.Float).SetInt(reduced.coef).Float64()

	scaleQuot := reduced.scale / n
	scaleRem := reduced.scale % n
	if scaleRem < 0 {
		scaleRem += n
		scaleQuot--
	}

	mantissaSeed := math.Pow(c, -1.0/float64(n))
	radixSeed := math.Pow(float64(radix), -float64(scaleRem)/float64(n))
	seedFloat := mantissaSeed * radixSeed
	if math.IsInf(seedFloat, 0) || math.IsNaN(seedFloat) || seedFloat == 0 {
		seedFloat = 1
	}

	y := numberFromFloat64(seedFloat, radix, doublePrecision(radix))
	y = Scale(y, -scaleQuot)
	if x.coef.Sign() < 0 {
		y = y.Neg()
	}
	return y
}
