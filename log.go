package bigfloat

import "strconv"

// Log returns the natural logarithm of x, rounded to targetPrecision
// digits.
//
// Arguments close to 1 are handled by a direct Taylor series on u = x-1,
// which converges in only a handful of terms there. Everything else goes
// through the Salamin AGM identity
//
//	ln(s) = pi / (2*agm(1, 4/s))
//
// which only converges to full accuracy once s is large enough; x is
// first scaled up by radix^m (m chosen from x's digit position) to reach
// that range, and m*ln(radix) is subtracted back out afterwards. ln(radix)
// itself is cached per radix, since every call pays for it.
func Log(x Number, targetPrecision int64) (Number, error) {
	if x.coef.Sign() <= 0 {
		return Number{}, newArithmeticError("log", "logarithm of a non-positive number")
	}
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("log", "target precision must be positive")
	}
	if targetPrecision == Infinite {
		return Number{}, newOperationalError("log", "logarithm is not generally exact")
	}

	radix := x.radix
	one := One(radix)
	if x.Equal(one) {
		return Zero(radix).WithPrecision(targetPrecision), nil
	}

	workingPrecision := extendPrecision(targetPrecision)

	u := x.Sub(one)
	if u.coef.Sign() != 0 && scaleExponent(u) < -workingPrecision/4 {
		return logTaylor(u, targetPrecision, workingPrecision)
	}

	e := scaleExponent(x)
	m := workingPrecision/2 - e + ExtraPrecision
	if m < 1 {
		m = 1
	}

	scaled := Scale(x, m)
	raw, err := agmLogRaw(scaled, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	lnRadix, err := logRadixCached(radix, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	result := raw.Sub(NewInt(m, radix).Mul(lnRadix))
	return result.WithPrecision(targetPrecision), nil
}

// agmLogRaw computes ln(x) directly via the Salamin AGM identity, with no
// radix range-reduction of its own — callers are responsible for having
// already scaled x into the AGM's convergence range. logRadixCached applies
// it to radix^m and divides by m, which computes ln(radix) without
// recursing back into Log.
func agmLogRaw(x Number, workingPrecision int64) (Number, error) {
	radix := x.radix
	s := x.WithPrecision(workingPrecision)
	arg, err := NewInt(4, radix).QuoPrecision(s, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	agm, err := Agm(One(radix), arg, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	piVal, err := PiRadix(radix, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	denom := NewInt(2, radix).Mul(agm)
	return piVal.QuoPrecision(denom, workingPrecision)
}

// logTaylor computes ln(1+u) as a direct alternating series, for u already
// known to be small.
func logTaylor(u Number, targetPrecision, workingPrecision int64) (Number, error) {
	radix := u.radix
	power := u.WithPrecision(workingPrecision)
	sum := power
	sign := 1
	threshold := -workingPrecision - ExtraPrecision
	for k := int64(2); k < workingPrecision*4+16; k++ {
		power = power.Mul(u).WithPrecision(workingPrecision)
		if power.coef.Sign() == 0 {
			break
		}
		sign = -sign
		termK, err := power.QuoPrecision(NewInt(k, radix), workingPrecision)
		if err != nil {
			return Number{}, err
		}
		if sign < 0 {
			sum = sum.Sub(termK)
		} else {
			sum = sum.Add(termK)
		}
		if scaleExponent(power) < threshold {
			break
		}
	}
	return sum.WithPrecision(targetPrecision), nil
}

// LogRadix returns ln(radix), rounded to targetPrecision digits. It is a
// convenience entry point to the same cache Log itself uses internally
// when range-reducing an arbitrary argument.
func LogRadix(radix int, targetPrecision int64) (Number, error) {
	if !validRadix(radix) {
		return Number{}, newOperationalError("log", "radix out of range [2,36]")
	}
	if targetPrecision <= 0 {
		return Number{}, newOperationalError("log", "target precision must be positive")
	}
	if targetPrecision == Infinite {
		return Number{}, newOperationalError("log", "logarithm is not generally exact")
	}
	workingPrecision := extendPrecision(targetPrecision)
	ln, err := logRadixCached(radix, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return ln.WithPrecision(targetPrecision), nil
}

var logCache = newRadixCache("log")

// logRadixCached returns ln(radix) at (at least) workingPrecision digits,
// reusing the cached value across calls and across radixes independently.
func logRadixCached(radix int, workingPrecision int64) (Number, error) {
	v, err := logCache.withRadix(radix, strconv.FormatInt(workingPrecision, 10), func() (any, error) {
		if cached, ok := logCache.load(radix); ok {
			c := cached.(Number)
			if c.prec == Infinite || c.prec >= workingPrecision {
				pkgLogger.Debugw("log cache hit", "radix", radix)
				return c, nil
			}
		}
		extended := workingPrecision + ExtraPrecision
		m := extended/2 + ExtraPrecision
		lnPow, err := agmLogRaw(Scale(One(radix), m).WithPrecision(extended), extended)
		if err != nil {
			return nil, err
		}
		ln, err := lnPow.QuoPrecision(NewInt(m, radix), extended)
		if err != nil {
			return nil, err
		}
		logCache.store(radix, ln)
		pkgLogger.Debugw("log cache computed", "radix", radix, "precision", extended)
		return ln, nil
	})
	if err != nil {
		return Number{}, err
	}
	return ensurePrecision(v.(Number), workingPrecision), nil
}
