package bigfloat

import (
	"math"
	"math/big"
)

// scaleExponent returns the radix-digit position of x's most significant
// digit: x lies in [radix^(e-1), radix^e) in magnitude. It is used by the
// log and exp Taylor-series shortcuts to decide whether an argument is
// close enough to zero (scaleExponent deeply negative) for the series to
// converge in only a handful of terms.
func scaleExponent(x Number) int64 {
	if x.coef.Sign() == 0 {
		return minInt64(x.scale, -1)
	}
	return x.scale + digitCount(new(big.Int).Abs(x.coef), x.radix)
}

// ExtraPrecision is the safety margin added to working precision throughout
// the kernel to absorb round-off from intermediate computations before a
// result is rounded back down to its caller's requested precision. The
// source library treats its equivalent constant as an implementation
// detail rather than a documented contract; 8 digits is used uniformly
// here (see SPEC_FULL.md, §E "Open Questions").
const ExtraPrecision int64 = 8

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// extendPrecision adds ExtraPrecision to p, saturating at Infinite.
func extendPrecision(p int64) int64 {
	if p == Infinite {
		return Infinite
	}
	if p > Infinite-ExtraPrecision {
		return Infinite - 1
	}
	return p + ExtraPrecision
}

// ensurePrecision returns x widened (never narrowed) to at least p digits of
// tracked precision, without fabricating any digit beyond what x already
// carries — it only ever raises the tracked precision tag up to p.
func ensurePrecision(x Number, p int64) Number {
	if x.prec == Infinite || x.prec >= p {
		return x
	}
	return x.WithPrecision(p)
}

// doublePrecision returns the number of radix-r digits representable by a
// native float64 mantissa (53 bits), used to size Newton's initial seed.
// float64 carries about 15.95 decimal digits; this generalizes that bound
// to an arbitrary radix by the change-of-base formula.
func doublePrecision(radix int) int64 {
	const mantissaBits = 53
	digits := float64(mantissaBits) * math.Ln2 / math.Log(float64(radix))
	return int64(math.Ceil(digits))
}

// matchingPrecisions implements the precision plan for a fused
// multiply-add/subtract a*b +/- c*d: each product is computed only to the
// precision that will actually survive the final addition, exactly as
// ApfloatMath.multiplyAddOrSubtract's getMatchingPrecisions does. It
// returns (pAB, pCD, pOut); a zero entry for pAB or pCD means that product
// contributes nothing and should be treated as zero without being computed.
func matchingPrecisions(a, b, c, d Number) (pAB, pCD, pOut int64) {
	abPrec := minInt64(a.prec, b.prec)
	cdPrec := minInt64(c.prec, d.prec)

	abScale := a.scale + b.scale
	cdScale := c.scale + d.scale

	if abPrec == Infinite && cdPrec == Infinite {
		return Infinite, Infinite, Infinite
	}

	// The smaller-magnitude product only needs enough precision to still
	// influence digits the larger-magnitude product's precision reaches;
	// anything further down is noise that the addition will discard anyway.
	scaleDiff := abScale - cdScale
	if scaleDiff < 0 {
		scaleDiff = -scaleDiff
	}

	switch {
	case abPrec == Infinite:
		pCD = cdPrec
		pAB = extendPrecision(maxInt64(pCD-scaleDiff, 0))
		if abScale < cdScale-cdPrec {
			pAB = 0
		}
	case cdPrec == Infinite:
		pAB = abPrec
		pCD = extendPrecision(maxInt64(pAB-scaleDiff, 0))
		if cdScale < abScale-abPrec {
			pCD = 0
		}
	default:
		pAB = abPrec
		pCD = cdPrec
		if abScale+abPrec < cdScale-cdPrec {
			pAB = 0
		} else if cdScale+cdPrec < abScale-abPrec {
			pCD = 0
		}
	}

	pOut = minInt64(nonZeroOr(pAB, Infinite), nonZeroOr(pCD, Infinite))
	if pAB == 0 {
		pOut = pCD
	}
	if pCD == 0 {
		pOut = pAB
	}
	return pAB, pCD, pOut
}

func nonZeroOr(v, fallback int64) int64 {
	if v == 0 {
		return fallback
	}
	return v
}
