package bigfloat

import "math"

// Root returns x^(1/n), rounded to x's own tracked precision.
func Root(x Number, n int64) (Number, error) {
	return RootPrecision(x, n, x.prec)
}

// RootPrecision returns x^(1/n) rounded to targetPrecision digits.
//
// n == 0 is undefined (the "zeroth root"); n == 1 returns x unchanged; a
// negative n delegates to InverseRoot(x, -n); an even n applied to a
// negative x is an arithmetic error, since no real n-th root exists. Every
// other case is computed as the reciprocal of InverseRoot(x, n), which
// carries all of the actual Newton iteration.
func RootPrecision(x Number, n, targetPrecision int64) (Number, error) {
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("root", "target precision must be positive")
	}
	if n == 0 {
		return Number{}, newArithmeticError("root", "zeroth root is undefined")
	}
	if n == 1 {
		return x.WithPrecision(targetPrecision), nil
	}
	if x.coef.Sign() == 0 {
		if n < 0 {
			return Number{}, newArithmeticError("root", "negative root of zero")
		}
		return Zero(x.radix).WithPrecision(targetPrecision), nil
	}
	if n == math.MinInt64 {
		// n/2 doesn't overflow (MinInt64 is even); x^(1/n) = sqrt(x^(1/(n/2))).
		half, err := RootPrecision(x, n/2, extendPrecision(targetPrecision))
		if err != nil {
			return Number{}, err
		}
		return RootPrecision(half, 2, targetPrecision)
	}
	if n < 0 {
		return InverseRootPrecision(x, -n, targetPrecision)
	}
	if x.coef.Sign() < 0 && n%2 == 0 {
		return Number{}, newArithmeticError("root", "even root of a negative number")
	}

	invRoot, err := InverseRootPrecision(x, n, extendPrecision(targetPrecision))
	if err != nil {
		return Number{}, err
	}
	return One(x.radix).QuoPrecision(invRoot, targetPrecision)
}

// Sqrt returns the square root of x, rounded to x's own tracked precision.
func Sqrt(x Number) (Number, error) { return Root(x, 2) }

// Cbrt returns the cube root of x, rounded to x's own tracked precision.
func Cbrt(x Number) (Number, error) { return Root(x, 3) }
