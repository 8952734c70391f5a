package bigfloat

import (
	"math/big"
)

// This file generalizes the teacher package's coefficient arithmetic
// (fint/bint, a machine-word fast path backed by a big.Int overflow path,
// both hardcoded to radix 10 and a 19-digit ceiling) to an arbitrary radix
// in 2..36 and an unbounded coefficient. Because Number's precision is a
// runtime attribute with no fixed ceiling, the bounded machine-word fast
// path stops paying for itself (coefficients routinely exceed 64 bits well
// before any interesting precision is reached), so this module keeps only
// the big.Int path, generalized across radixes.

var bigOne = big.NewInt(1)

// radixBig returns a fresh *big.Int holding the given radix.
func radixBig(radix int) *big.Int {
	return big.NewInt(int64(radix))
}

// radixPow returns radix^k for k >= 0, as a fresh *big.Int.
func radixPow(radix int, k int64) *big.Int {
	if k == 0 {
		return new(big.Int).Set(bigOne)
	}
	z := new(big.Int)
	z.Exp(radixBig(radix), big.NewInt(k), nil)
	return z
}

// digitCount returns the number of significant radix digits of |x|. Zero has
// one digit, by convention (matching the teacher's fint.prec/bint.prec for
// the zero coefficient).
func digitCount(x *big.Int, radix int) int64 {
	if x.Sign() == 0 {
		return 1
	}
	t := x
	if x.Sign() < 0 {
		t = new(big.Int).Abs(x)
	}
	// big.Int.Text produces exactly the digit string in the given base,
	// without a sign, which is what we want to count.
	return int64(len(t.Text(radix)))
}

// roundCoef rounds |coef| down to at most prec significant radix digits,
// using half-up-away-from-zero rounding (coef is always non-negative here;
// Number tracks the sign separately). It returns the rounded magnitude and
// the number of trailing digits that were dropped, which the caller must add
// to the value's scale to preserve magnitude. If coef already fits within
// prec digits, it is returned unchanged with a drop count of zero.
func roundCoef(coef *big.Int, radix int, prec int64) (*big.Int, int64) {
	n := digitCount(coef, radix)
	drop := n - prec
	if drop <= 0 {
		return new(big.Int).Set(coef), 0
	}

	divisor := radixPow(radix, drop)
	quotient, remainder := new(big.Int), new(big.Int)
	quotient.QuoRem(coef, divisor, remainder)

	twiceRemainder := new(big.Int).Lsh(remainder, 1)
	if twiceRemainder.CmpAbs(divisor) >= 0 {
		quotient.Add(quotient, bigOne)
	}

	// Rounding up may have produced one extra digit (e.g. 999 -> 1000 at
	// prec=3): shed it and account for the extra dropped digit.
	if digitCount(quotient, radix) > prec {
		quotient.Quo(quotient, radixBig(radix))
		drop++
	}

	return quotient, drop
}

// truncateCoef behaves like roundCoef but always rounds towards zero
// (truncation) instead of half-up.
func truncateCoef(coef *big.Int, radix int, prec int64) (*big.Int, int64) {
	n := digitCount(coef, radix)
	drop := n - prec
	if drop <= 0 {
		return new(big.Int).Set(coef), 0
	}
	divisor := radixPow(radix, drop)
	quotient := new(big.Int).Quo(coef, divisor)
	return quotient, drop
}
