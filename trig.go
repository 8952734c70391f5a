package bigfloat

// Sin, Cos, Tan, Asin, Acos, Atan and Atan2 are all built from two small
// direct-series primitives — sinCosSmall and atanSeries — plus argument
// reduction that brings any input down into each series' fast-converging
// range before evaluating it, and then undoes the reduction with the
// matching double-angle or angle-doubling identity. This sidesteps the
// circularity a Complex-exp/log-based definition of trig would otherwise
// create (computing e^(ix) needs cos/sin of the imaginary part to begin
// with) — see DESIGN.md.

// reduceAngle brings x into (-pi, pi] by subtracting the nearest multiple
// of 2*pi.
func reduceAngle(x Number, workingPrecision int64) (Number, error) {
	radix := x.radix
	piVal, err := PiRadix(radix, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	twoPi := piVal.Mul(NewInt(2, radix))

	quot, err := x.QuoPrecision(twoPi, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	n := quot.Truncate()
	r := x.Sub(twoPi.Mul(n))

	if r.Cmp(piVal) > 0 {
		r = r.Sub(twoPi)
	} else if r.Cmp(piVal.Neg()) <= 0 {
		r = r.Add(twoPi)
	}
	return r, nil
}

// sinCosSmall evaluates sin and cos directly via their Maclaurin series,
// valid for any x but only fast-converging once |x| is small.
func sinCosSmall(x Number, workingPrecision int64) (sin, cos Number, err error) {
	radix := x.radix
	xSq := x.Mul(x).WithPrecision(workingPrecision)
	sinSum := x.WithPrecision(workingPrecision)
	cosSum := One(radix).WithPrecision(workingPrecision)
	sinTerm := sinSum
	cosTerm := cosSum
	threshold := -workingPrecision - ExtraPrecision

	for k := int64(1); k < workingPrecision*2+16; k++ {
		sinTerm = sinTerm.Mul(xSq).Neg()
		sinTerm, err = sinTerm.QuoPrecision(NewInt(2*k*(2*k+1), radix), workingPrecision)
		if err != nil {
			return Number{}, Number{}, err
		}
		sinSum = sinSum.Add(sinTerm)

		cosTerm = cosTerm.Mul(xSq).Neg()
		cosTerm, err = cosTerm.QuoPrecision(NewInt((2*k-1)*(2*k), radix), workingPrecision)
		if err != nil {
			return Number{}, Number{}, err
		}
		cosSum = cosSum.Add(cosTerm)

		if scaleExponent(sinTerm) < threshold && scaleExponent(cosTerm) < threshold {
			break
		}
	}
	return sinSum, cosSum, nil
}

// sinCos reduces x mod 2*pi, halves it until small enough for
// sinCosSmall's series to converge quickly, then doubles the angle back up
// with the standard double-angle identities.
func sinCos(x Number, workingPrecision int64) (sin, cos Number, err error) {
	radix := x.radix
	reduced, err := reduceAngle(x, workingPrecision)
	if err != nil {
		return Number{}, Number{}, err
	}

	threshold := New(1, -1, Infinite, radix)
	two := NewInt(2, radix)
	shifts := 0
	for reduced.Abs().Cmp(threshold) >= 0 && shifts < 256 {
		var q Number
		q, err = reduced.QuoPrecision(two, workingPrecision)
		if err != nil {
			return Number{}, Number{}, err
		}
		reduced = q
		shifts++
	}

	sin, cos, err = sinCosSmall(reduced, workingPrecision)
	if err != nil {
		return Number{}, Number{}, err
	}

	for i := 0; i < shifts; i++ {
		newSin := two.Mul(sin).Mul(cos).WithPrecision(workingPrecision)
		newCos := cos.Mul(cos).Sub(sin.Mul(sin)).WithPrecision(workingPrecision)
		sin, cos = newSin, newCos
	}
	return sin, cos, nil
}

// Sin returns sin(x), rounded to targetPrecision digits.
func Sin(x Number, targetPrecision int64) (Number, error) {
	workingPrecision := extendPrecision(targetPrecision)
	sin, _, err := sinCos(x.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return sin.WithPrecision(targetPrecision), nil
}

// Cos returns cos(x), rounded to targetPrecision digits.
func Cos(x Number, targetPrecision int64) (Number, error) {
	workingPrecision := extendPrecision(targetPrecision)
	_, cos, err := sinCos(x.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return cos.WithPrecision(targetPrecision), nil
}

// Tan returns sin(x)/cos(x), rounded to targetPrecision digits. It fails
// where the cosine is smaller in magnitude than the last digit x carries,
// since x is then indistinguishable from a pole.
func Tan(x Number, targetPrecision int64) (Number, error) {
	workingPrecision := extendPrecision(targetPrecision)
	sin, cos, err := sinCos(x.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	resolution := scaleExponent(x) - minInt64(x.prec, workingPrecision)
	if cos.coef.Sign() == 0 || scaleExponent(cos) <= resolution {
		return Number{}, newArithmeticError("tan", "tangent undefined where cosine is zero")
	}
	result, err := sin.QuoPrecision(cos, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// atanSeries evaluates atan(x) directly via its Maclaurin series, valid
// but only fast-converging for small |x|.
func atanSeries(x Number, workingPrecision int64) (Number, error) {
	radix := x.radix
	xSq := x.Mul(x).WithPrecision(workingPrecision)
	sum := x.WithPrecision(workingPrecision)
	power := sum
	threshold := -workingPrecision - ExtraPrecision

	for k := int64(1); k < workingPrecision*4+16; k++ {
		power = power.Mul(xSq).Neg()
		term, err := power.QuoPrecision(NewInt(2*k+1, radix), workingPrecision)
		if err != nil {
			return Number{}, err
		}
		sum = sum.Add(term)
		if power.coef.Sign() == 0 || scaleExponent(term) < threshold {
			break
		}
	}
	return sum, nil
}

// atanReduced repeatedly applies the tangent half-angle substitution
// x -> x/(1+sqrt(1+x^2)) (which halves the angle atan(x) denotes) until x
// is small, evaluates atanSeries there, then doubles the angle back up by
// straightforward multiplication.
func atanReduced(x Number, workingPrecision int64) (Number, error) {
	radix := x.radix
	threshold := New(1, -1, Infinite, radix)
	reduced := x
	shifts := 0
	for reduced.Abs().Cmp(threshold) >= 0 && shifts < 256 {
		xSq := reduced.Mul(reduced).WithPrecision(workingPrecision)
		s, err := Sqrt(One(radix).Add(xSq).WithPrecision(workingPrecision))
		if err != nil {
			return Number{}, err
		}
		q, err := reduced.QuoPrecision(One(radix).Add(s), workingPrecision)
		if err != nil {
			return Number{}, err
		}
		reduced = q
		shifts++
	}

	result, err := atanSeries(reduced, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	two := NewInt(2, radix)
	for i := 0; i < shifts; i++ {
		result = result.Mul(two)
	}
	return result, nil
}

// Atan returns atan(x), rounded to targetPrecision digits.
func Atan(x Number, targetPrecision int64) (Number, error) {
	workingPrecision := extendPrecision(targetPrecision)
	result, err := atanReduced(x.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// Asin returns asin(x) for x in [-1,1], rounded to targetPrecision digits,
// via atan(x/sqrt(1-x^2)), with the domain endpoints handled directly to
// avoid dividing by zero there.
func Asin(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	one := One(radix)
	if x.Abs().Cmp(one) > 0 {
		return Number{}, newArithmeticError("asin", "argument outside [-1,1]")
	}
	workingPrecision := extendPrecision(targetPrecision)

	if x.Abs().Equal(one) {
		piVal, err := PiRadix(radix, workingPrecision)
		if err != nil {
			return Number{}, err
		}
		half, err := piVal.QuoPrecision(NewInt(2, radix), workingPrecision)
		if err != nil {
			return Number{}, err
		}
		if x.coef.Sign() < 0 {
			half = half.Neg()
		}
		return half.WithPrecision(targetPrecision), nil
	}

	xw := x.WithPrecision(workingPrecision)
	denom, err := Sqrt(one.Sub(xw.Mul(xw)).WithPrecision(workingPrecision))
	if err != nil {
		return Number{}, err
	}
	ratio, err := xw.QuoPrecision(denom, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	result, err := atanReduced(ratio, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// Acos returns acos(x) for x in [-1,1], rounded to targetPrecision digits,
// via pi/2 - asin(x).
func Acos(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	workingPrecision := extendPrecision(targetPrecision)
	asin, err := Asin(x, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	piVal, err := PiRadix(radix, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	half, err := piVal.QuoPrecision(NewInt(2, radix), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return half.Sub(asin).WithPrecision(targetPrecision), nil
}

// Atan2 returns the angle of the point (x,y), in (-pi,pi], rounded to
// targetPrecision digits.
func Atan2(y, x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	workingPrecision := extendPrecision(targetPrecision)
	if x.coef.Sign() == 0 && y.coef.Sign() == 0 {
		return Number{}, newArithmeticError("atan2", "both arguments zero")
	}
	piVal, err := PiRadix(radix, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	if x.coef.Sign() == 0 {
		half, err := piVal.QuoPrecision(NewInt(2, radix), workingPrecision)
		if err != nil {
			return Number{}, err
		}
		if y.coef.Sign() < 0 {
			half = half.Neg()
		}
		return half.WithPrecision(targetPrecision), nil
	}

	ratio, err := y.WithPrecision(workingPrecision).QuoPrecision(x.WithPrecision(workingPrecision), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	base, err := atanReduced(ratio, workingPrecision)
	if err != nil {
		return Number{}, err
	}

	switch {
	case x.coef.Sign() > 0:
		return base.WithPrecision(targetPrecision), nil
	case y.coef.Sign() >= 0:
		return base.Add(piVal).WithPrecision(targetPrecision), nil
	default:
		return base.Sub(piVal).WithPrecision(targetPrecision), nil
	}
}
