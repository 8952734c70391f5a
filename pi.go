package bigfloat

import (
	"math"
	"math/big"
	"strconv"
)

// Chudnovsky series constants: 1/pi = 12 * sum_k (-1)^k (6k)!(A+Bk) /
// ((3k)!(k!)^3 C^(3k+3/2)), with C = 640320 and piC3Over24 = C^3/24.
const (
	piA        = 13591409
	piB        = 545140134
	piC3Over24 = 10939058860032000
	piSqrtArg  = 10005
	piScale    = 426880
	// piDigitsPerTermBase10 is the number of additional correct decimal
	// digits each series term contributes: log10((C^3/24) / 72), i.e.
	// log10(C^3/1728), conventionally quoted as ~14.1816474627254776555.
	piDigitsPerTermBase10 = 14.181647462725478
)

// piSplit is a binary-splitting partial-sum node for a half-open term
// range of the Chudnovsky series: P and Q are the accumulated numerator
// and denominator products, T the accumulated (signed) numerator sum, and
// terms the length of the range it covers. Combining two adjacent nodes
// recovers the node for their concatenated range exactly, with no loss of
// precision, since every quantity involved is an exact integer.
type piSplit struct {
	p, q, t *big.Int
	terms   int64
}

// piState is the per-radix cached state: the binary-split accumulator plus
// the inverse square root of piSqrtArg computed for it. invSqrt is kept at
// its own precision tag so a later, higher-precision Pi call can hand it
// to InverseRootGuess as the Newton seed instead of reseeding from a
// native float64 — the same incremental-extension trick the split itself
// uses, applied to the one transcendental piece of the assembly step.
type piState struct {
	split   piSplit
	invSqrt Number
}

var piCache = newRadixCache("pi")

// Pi returns pi rounded to targetPrecision digits in the process-wide
// default radix (see [DefaultRadix]). It is the radix-optional entry
// point spec §6 describes; callers that need a specific radix should call
// [PiRadix] directly.
func Pi(targetPrecision int64) (Number, error) {
	return PiRadix(DefaultRadix(), targetPrecision)
}

// PiRadix returns pi rounded to targetPrecision digits in the given radix.
//
// Each radix's binary-split accumulator is cached for the life of the
// process and never evicted: a later call asking for more digits in the
// same radix extends the existing split by only as many further terms as
// needed, rather than restarting the series from term zero, mirroring
// ApfloatMath.calculatePi's incremental extension of a cached partial sum.
func PiRadix(radix int, targetPrecision int64) (Number, error) {
	if !validRadix(radix) {
		return Number{}, newOperationalError("pi", "radix out of range [2,36]")
	}
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("pi", "target precision must be positive")
	}
	if targetPrecision == Infinite {
		return Number{}, newOperationalError("pi", "pi is not representable exactly")
	}

	workingPrecision := extendPrecision(targetPrecision)
	terms := piTermsNeeded(radix, workingPrecision)

	v, err := piCache.withRadix(radix, strconv.FormatInt(workingPrecision, 10), func() (any, error) {
		cached, ok := piCache.load(radix)
		var state piState
		if ok {
			state = cached.(piState)
		}

		if !ok || state.split.terms < terms || state.invSqrt.prec < workingPrecision {
			extendedSplit := state.split
			if !ok {
				extendedSplit = piSplitRange(0, terms)
			} else if state.split.terms < terms {
				extendedSplit = piCombine(state.split, piSplitRange(state.split.terms, terms))
			}

			seed := state.invSqrt
			invSqrt, err := InverseRootGuess(NewInt(piSqrtArg, radix), 2, workingPrecision, seed)
			if err != nil {
				return nil, err
			}

			extended := piState{split: extendedSplit, invSqrt: invSqrt}
			piCache.store(radix, extended)
			pkgLogger.Debugw("pi cache extended", "radix", radix, "terms", extendedSplit.terms, "reusedSeed", !seed.isAbsent())
			return extended, nil
		}
		pkgLogger.Debugw("pi cache hit", "radix", radix, "terms", state.split.terms)
		return state, nil
	})
	if err != nil {
		return Number{}, err
	}

	return piFromSplit(v.(piState), radix, targetPrecision, workingPrecision)
}

func piTermsNeeded(radix int, precision int64) int64 {
	digitsPerTerm := piDigitsPerTermBase10 * math.Log(10) / math.Log(float64(radix))
	terms := int64(float64(precision)/digitsPerTerm) + 2
	if terms < 1 {
		terms = 1
	}
	return terms
}

func piFromSplit(state piState, radix int, targetPrecision, workingPrecision int64) (Number, error) {
	qNumber := numberFromBig(radix, state.split.q, 0, Infinite)
	tNumber := numberFromBig(radix, state.split.t, 0, Infinite)

	// sqrt(piSqrtArg) = piSqrtArg * invSqrt(piSqrtArg); recovering the direct
	// square root this way, rather than caching it directly, is what lets
	// the cached value double as InverseRootGuess's own Newton seed on the
	// next extension (Sqrt has no seed-reuse entry point of its own).
	sqrtVal := NewInt(piSqrtArg, radix).Mul(state.invSqrt.WithPrecision(workingPrecision))
	c := NewInt(piScale, radix).Mul(sqrtVal)

	numerator := c.Mul(qNumber)
	result, err := numerator.QuoPrecision(tNumber, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// piBaseCase returns the leaf split for the single term at index a.
func piBaseCase(a int64) piSplit {
	var p, q *big.Int
	if a == 0 {
		p, q = big.NewInt(1), big.NewInt(1)
	} else {
		p = big.NewInt(6*a - 5)
		p.Mul(p, big.NewInt(2*a-1))
		p.Mul(p, big.NewInt(6*a-1))
		q = new(big.Int).Mul(big.NewInt(a), big.NewInt(a))
		q.Mul(q, big.NewInt(a))
		q.Mul(q, big.NewInt(piC3Over24))
	}
	coeff := new(big.Int).Mul(big.NewInt(a), big.NewInt(piB))
	coeff.Add(coeff, big.NewInt(piA))
	t := new(big.Int).Mul(p, coeff)
	if a%2 == 1 {
		t.Neg(t)
	}
	return piSplit{p: p, q: q, t: t, terms: 1}
}

// piCombine merges the split for [a,m) with the split for [m,b) into the
// split for [a,b): P and Q multiply, and T combines as
// Q_right*T_left + P_left*T_right, the standard binary-splitting merge.
func piCombine(left, right piSplit) piSplit {
	p := new(big.Int).Mul(left.p, right.p)
	q := new(big.Int).Mul(left.q, right.q)
	t := new(big.Int).Mul(right.q, left.t)
	t.Add(t, new(big.Int).Mul(left.p, right.t))
	return piSplit{p: p, q: q, t: t, terms: left.terms + right.terms}
}

// piSplitRange computes the split for the half-open term range [a,b),
// unrolling ranges of length 1-4 directly (the overwhelming majority of
// recursive calls bottom out at these lengths) before falling back to a
// balanced recursive split.
func piSplitRange(a, b int64) piSplit {
	switch b - a {
	case 1:
		return piBaseCase(a)
	case 2:
		return piCombine(piBaseCase(a), piBaseCase(a+1))
	case 3:
		return piCombine(piCombine(piBaseCase(a), piBaseCase(a+1)), piBaseCase(a+2))
	case 4:
		left := piCombine(piBaseCase(a), piBaseCase(a+1))
		right := piCombine(piBaseCase(a+2), piBaseCase(a+3))
		return piCombine(left, right)
	default:
		m := a + (b-a)/2
		return piCombine(piSplitRange(a, m), piSplitRange(m, b))
	}
}
