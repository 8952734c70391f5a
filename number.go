package bigfloat

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Infinite is the distinguished precision value meaning "exact, unlimited
// precision". It mirrors apfloat's Apfloat.INFINITE sentinel (Java's
// Long.MAX_VALUE): arithmetic that cannot be exact (root, division by a
// non-unit, any transcendental routine) must reject it rather than attempt
// to honor it.
const Infinite int64 = math.MaxInt64

// Number is an arbitrary-precision signed floating-point value in a runtime
// radix between 2 and 36. Its numeric value is:
//
//	coef * radix^scale
//
// where coef is a signed arbitrary-size integer (its sign doubles as the
// Number's sign) and scale is a signed exponent. Precision tracks how many
// leading radix digits of |coef| are considered significant; it may be
// [Infinite].
//
// The zero value of Number (radix 0) is not a valid number — it is used
// internally as the "no value supplied" sentinel, the same role Java's
// null plays for an optional initial guess in apfloat's inverseRoot
// overloads.
type Number struct {
	radix int
	scale int64
	prec  int64
	coef  *big.Int
}

// isAbsent reports whether x is the zero Number{}, used as an optional
// argument sentinel (see InverseRootGuess).
func (x Number) isAbsent() bool {
	return x.radix == 0
}

func validRadix(radix int) bool {
	return radix >= 2 && radix <= 36
}

// numberFromBig builds a Number from a signed coefficient, rounding it down
// to prec significant digits (adjusting scale to compensate) unless prec is
// [Infinite].
func numberFromBig(radix int, coef *big.Int, scale, prec int64) Number {
	if prec == Infinite {
		return Number{radix: radix, scale: scale, prec: Infinite, coef: new(big.Int).Set(coef)}
	}
	neg := coef.Sign() < 0
	mag := new(big.Int).Abs(coef)
	rounded, drop := roundCoef(mag, radix, prec)
	if neg {
		rounded.Neg(rounded)
	}
	return Number{radix: radix, scale: scale + drop, prec: prec, coef: rounded}
}

// NewInt returns the exact (Infinite precision) value of v in the given
// radix.
func NewInt(v int64, radix int) Number {
	return Number{radix: radix, scale: 0, prec: Infinite, coef: big.NewInt(v)}
}

// Zero returns the exact zero value in the given radix.
func Zero(radix int) Number { return NewInt(0, radix) }

// One returns the exact value one in the given radix.
func One(radix int) Number { return NewInt(1, radix) }

// New builds coef * radix^scale, rounded to prec significant digits (or
// left exact if prec is [Infinite]).
func New(coef int64, scale, prec int64, radix int) Number {
	return numberFromBig(radix, big.NewInt(coef), scale, prec)
}

// Parse parses a string into a Number at the given precision and radix.
// The accepted grammar is an optional sign, radix digits with an optional
// '.', and — only when radix <= 14, since otherwise 'e' is itself a valid
// digit — a trailing exponent marker 'e'/'E' followed by a signed decimal
// integer, e.g. "1e10".
func Parse(s string, prec int64, radix int) (Number, error) {
	if !validRadix(radix) {
		return Number{}, newOperationalError("parse", "radix out of range [2,36]")
	}
	orig := s
	sign := int64(1)
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	mantissa := s
	var exp int64
	if radix <= 14 {
		if idx := strings.IndexAny(s, "eE"); idx >= 0 {
			mantissa = s[:idx]
			e, err := strconv.ParseInt(s[idx+1:], 10, 64)
			if err != nil {
				return Number{}, newOperationalError("parse", "invalid exponent in "+orig)
			}
			exp = e
		}
	}

	intPart, fracPart := mantissa, ""
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		intPart, fracPart = mantissa[:dot], mantissa[dot+1:]
	}
	digits := intPart + fracPart
	if digits == "" {
		return Number{}, newOperationalError("parse", "empty mantissa in "+orig)
	}

	coef, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return Number{}, newOperationalError("parse", "invalid digits for radix in "+orig)
	}
	if sign < 0 {
		coef.Neg(coef)
	}
	scale := exp - int64(len(fracPart))
	return numberFromBig(radix, coef, scale, prec), nil
}

// Radix returns x's radix.
func (x Number) Radix() int { return x.radix }

// Scale returns x's scale, the exponent of radix in coef * radix^scale.
func (x Number) Scale() int64 { return x.scale }

// Precision returns the number of significant radix digits tracked by x, or
// [Infinite].
func (x Number) Precision() int64 { return x.prec }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x Number) Sign() int { return x.coef.Sign() }

// WithPrecision returns x viewed at precision p. Narrowing rounds the
// coefficient; widening only changes the tracked precision and never
// fabricates digits beyond what x already carries.
func (x Number) WithPrecision(p int64) Number {
	if p == x.prec {
		return x
	}
	if p == Infinite || (x.prec != Infinite && p >= x.prec) {
		return Number{radix: x.radix, scale: x.scale, prec: p, coef: new(big.Int).Set(x.coef)}
	}
	return numberFromBig(x.radix, x.coef, x.scale, p)
}

// align returns the signed coefficients of x and y rescaled to their common
// (smaller) scale, along with that scale. x and y must share a radix; like
// the rest of this ADT's operations, mixing radixes is undefined.
func align(x, y Number) (xc, yc *big.Int, scale int64) {
	s := x.scale
	if y.scale < s {
		s = y.scale
	}
	xc = new(big.Int).Mul(x.coef, radixPow(x.radix, x.scale-s))
	yc = new(big.Int).Mul(y.coef, radixPow(x.radix, y.scale-s))
	return xc, yc, s
}

// Add returns x + y, at precision min(x.Precision(), y.Precision()).
func (x Number) Add(y Number) Number {
	xc, yc, s := align(x, y)
	sum := xc.Add(xc, yc)
	return numberFromBig(x.radix, sum, s, minInt64(x.prec, y.prec))
}

// Sub returns x - y, at precision min(x.Precision(), y.Precision()).
func (x Number) Sub(y Number) Number {
	xc, yc, s := align(x, y)
	diff := xc.Sub(xc, yc)
	return numberFromBig(x.radix, diff, s, minInt64(x.prec, y.prec))
}

// Mul returns x * y, at precision min(x.Precision(), y.Precision()).
func (x Number) Mul(y Number) Number {
	coef := new(big.Int).Mul(x.coef, y.coef)
	return numberFromBig(x.radix, coef, x.scale+y.scale, minInt64(x.prec, y.prec))
}

// QuoPrecision returns x / y rounded to prec significant digits.
func (x Number) QuoPrecision(y Number, prec int64) (Number, error) {
	if y.coef.Sign() == 0 {
		return Number{}, newArithmeticError("divide", "division by zero")
	}
	if prec <= 0 {
		return Number{}, newOperationalError("divide", "target precision must be positive")
	}
	if x.coef.Sign() == 0 {
		return Zero(x.radix).WithPrecision(prec), nil
	}

	xAbs := new(big.Int).Abs(x.coef)
	yAbs := new(big.Int).Abs(y.coef)

	// Scale the numerator up so that truncated integer division yields at
	// least prec+guard significant digits, then let numberFromBig's rounding
	// shed the guard digits. This mirrors the teacher's quoSlow big.Int
	// fallback, generalized to an arbitrary target precision and radix.
	const guard = 4
	extra := prec + guard + digitCount(yAbs, x.radix) - digitCount(xAbs, x.radix)
	if extra < 0 {
		extra = 0
	}
	numerator := new(big.Int).Mul(xAbs, radixPow(x.radix, extra))
	quotient := new(big.Int).Quo(numerator, yAbs)

	if (x.coef.Sign() < 0) != (y.coef.Sign() < 0) {
		quotient.Neg(quotient)
	}
	scale := x.scale - y.scale - extra
	return numberFromBig(x.radix, quotient, scale, prec), nil
}

// Quo returns x / y. If either operand has finite precision, the result is
// rounded to min(x.Precision(), y.Precision()); both being [Infinite] is an
// operational error, since exact division is not generally representable.
func (x Number) Quo(y Number) (Number, error) {
	prec := minInt64(x.prec, y.prec)
	if prec == Infinite {
		return Number{}, newOperationalError("divide", "cannot divide to infinite precision")
	}
	return x.QuoPrecision(y, prec)
}

// Neg returns -x.
func (x Number) Neg() Number {
	return Number{radix: x.radix, scale: x.scale, prec: x.prec, coef: new(big.Int).Neg(x.coef)}
}

// Abs returns |x|.
func (x Number) Abs() Number {
	if x.coef.Sign() >= 0 {
		return x
	}
	return x.Neg()
}

// Cmp compares x and y by value, returning -1, 0 or +1.
func (x Number) Cmp(y Number) int {
	xc, yc, _ := align(x, y)
	return xc.Cmp(yc)
}

// Equal reports whether x and y denote the same value, irrespective of
// scale or precision.
func (x Number) Equal(y Number) bool {
	return x.Cmp(y) == 0
}

// EqualDigits returns the number of leading radix digits that x and y agree
// on, after aligning their scales. Two zeros, or a zero compared against a
// nonzero value, agree on no digits; equal nonzero values agree on
// min(x.Precision(), y.Precision()) digits. This is used to measure AGM
// convergence and the precision lost by functions whose argument is close
// to a fixed point (log(x) near x=1, pow(x,y) near x=1).
func (x Number) EqualDigits(y Number) int64 {
	if x.coef.Sign() == 0 || y.coef.Sign() == 0 {
		return 0
	}
	xc, yc, _ := align(x, y)
	xa := new(big.Int).Abs(xc)
	ya := new(big.Int).Abs(yc)
	if xa.Cmp(ya) == 0 {
		return minInt64(x.prec, y.prec)
	}
	diff := new(big.Int).Sub(xa, ya)
	diff.Abs(diff)
	maxDigits := digitCount(xa, x.radix)
	if d := digitCount(ya, x.radix); d > maxDigits {
		maxDigits = d
	}
	agree := maxDigits - digitCount(diff, x.radix)
	if agree < 0 {
		agree = 0
	}
	return agree
}

// Truncate rounds x towards zero, returning an exact (integer-valued)
// Number.
func (x Number) Truncate() Number {
	if x.scale >= 0 {
		return Number{radix: x.radix, scale: x.scale, prec: Infinite, coef: new(big.Int).Set(x.coef)}
	}
	divisor := radixPow(x.radix, -x.scale)
	q := new(big.Int).Quo(x.coef, divisor)
	return Number{radix: x.radix, scale: 0, prec: Infinite, coef: q}
}

// Floor rounds x towards negative infinity, returning an exact
// (integer-valued) Number.
func (x Number) Floor() Number {
	t := x.Truncate()
	if x.scale < 0 && x.coef.Sign() < 0 {
		divisor := radixPow(x.radix, -x.scale)
		rem := new(big.Int)
		new(big.Int).QuoRem(x.coef, divisor, rem)
		if rem.Sign() != 0 {
			t.coef.Sub(t.coef, bigOne)
		}
	}
	return t
}

// Ceil rounds x towards positive infinity, returning an exact
// (integer-valued) Number.
func (x Number) Ceil() Number {
	t := x.Truncate()
	if x.scale < 0 && x.coef.Sign() > 0 {
		divisor := radixPow(x.radix, -x.scale)
		rem := new(big.Int)
		new(big.Int).QuoRem(x.coef, divisor, rem)
		if rem.Sign() != 0 {
			t.coef.Add(t.coef, bigOne)
		}
	}
	return t
}

// Float64 converts x to the nearest float64, a lossy conversion used only
// to seed Newton iterations.
func (x Number) Float64() float64 {
	cf := new(big.Float).SetInt(x.coef)
	f, _ := cf.Float64()
	return f * math.Pow(float64(x.radix), float64(x.scale))
}

// numberFromFloat64 builds a Number of at most prec significant digits
// closest to f, by scaling f up or down by a power of radix until its
// integer part carries exactly prec digits and truncating. It exists
// because Parse's grammar expects digit characters of the target radix,
// which a base-10 formatted float is not once radix != 10 — this is the
// general-radix analogue of a native double-to-decimal seed conversion.
func numberFromFloat64(f float64, radix int, prec int64) Number {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero(radix).WithPrecision(prec)
	}
	neg := f < 0
	if neg {
		f = -f
	}
	logRadix := math.Log(float64(radix))
	exp := math.Floor(math.Log(f)/logRadix) + 1
	shift := prec - int64(exp)
	scaled := f * math.Pow(float64(radix), float64(shift))
	coef, _ := big.NewFloat(scaled).Int(nil)
	if coef.Sign() == 0 {
		coef = big.NewInt(1)
	}
	val := numberFromBig(radix, coef, -shift, prec)
	if neg {
		val = val.Neg()
	}
	return val
}

// String renders x as "<signed coefficient in radix><scale>", e.g.
// "123e-4". It is meant for diagnostics, not for round-tripping through
// Parse at an arbitrary radix.
func (x Number) String() string {
	return x.coef.Text(x.radix) + "e" + strconv.FormatInt(x.scale, 10)
}
