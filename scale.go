package bigfloat

import (
	"math"
	"math/big"
)

// Scale returns x * x.Radix()^k. Because Number already tracks its radix
// exponent explicitly (§3), multiplying by a power of the radix never loses
// digits — it can be realized as a direct adjustment of the scale field
// rather than an actual coefficient multiplication, unlike apfloat's
// original Java implementation, whose internal representation required a
// real multiply/divide by a constructed radix^k value. The i64-extreme
// defensive split described by the original (and by this package's design
// notes) is kept here as an explicit safety net around the one place a
// 64-bit overflow could occur: adding k to an already extreme x.scale.
func Scale(x Number, k int64) Number {
	if k == 0 || x.coef.Sign() == 0 {
		return x
	}
	if k == math.MinInt64 {
		half := k / 2
		return Scale(Scale(x, half), k-half)
	}
	return Number{radix: x.radix, scale: addScale(x.scale, k), prec: x.prec, coef: new(big.Int).Set(x.coef)}
}

// addScale adds a and b, splitting the addition in half first whenever
// either operand's magnitude is large enough that naive addition could
// overflow int64 (the top two bits of its absolute value are set).
func addScale(a, b int64) int64 {
	if fitsComfortably(a) && fitsComfortably(b) {
		return a + b
	}
	if a == math.MinInt64 {
		h := a / 2
		return addScale(addScale(h, a-h), b)
	}
	if b == math.MinInt64 {
		h := b / 2
		return addScale(a, addScale(h, b-h))
	}
	ha := a / 2
	hb := b / 2
	return addScale(addScale(ha, a-ha), addScale(hb, b-hb))
}

func fitsComfortably(v int64) bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a>>62 == 0
}

// Pow returns x^n for an arbitrary signed integer exponent n, by binary
// exponentiation: trailing zero bits of n are squared out first (the
// classic trick of reaching the first set bit before accumulating into the
// result), then the remaining bits accumulate the result right to left,
// from the least significant bit upwards.
func Pow(x Number, n int64) (Number, error) {
	if n == 0 {
		if x.coef.Sign() == 0 {
			return Number{}, newArithmeticError("pow", "zero to power zero")
		}
		return NewInt(1, x.radix), nil
	}
	if n == math.MinInt64 {
		half, err := Pow(x, n/2)
		if err != nil {
			return Number{}, err
		}
		return half.Mul(half), nil
	}
	if n < 0 {
		inv, err := InverseRoot(x, 1)
		if err != nil {
			return Number{}, err
		}
		x, n = inv, -n
	}
	return powUint(x, uint64(n)), nil
}

func powUint(x Number, n uint64) Number {
	for n&1 == 0 {
		x = x.Mul(x)
		n >>= 1
	}
	r := x
	for n >>= 1; n > 0; n >>= 1 {
		x = x.Mul(x)
		if n&1 != 0 {
			r = r.Mul(x)
		}
	}
	return r
}
