package bigfloat

// MultiplyAdd returns a*b + c*d, computing each product only to the
// precision matchingPrecisions determines will actually survive the final
// addition.
func MultiplyAdd(a, b, c, d Number) Number {
	return multiplyAddOrSub(a, b, c, d, false)
}

// MultiplySubtract returns a*b - c*d, computing each product only to the
// precision matchingPrecisions determines will actually survive the final
// subtraction.
func MultiplySubtract(a, b, c, d Number) Number {
	return multiplyAddOrSub(a, b, c, d, true)
}

func multiplyAddOrSub(a, b, c, d Number, subtract bool) Number {
	pAB, pCD, pOut := matchingPrecisions(a, b, c, d)

	ab := Zero(a.radix)
	if pAB > 0 {
		ab = a.WithPrecision(pAB).Mul(b.WithPrecision(pAB))
	}
	cd := Zero(c.radix)
	if pCD > 0 {
		cd = c.WithPrecision(pCD).Mul(d.WithPrecision(pCD))
	}

	var result Number
	if subtract {
		result = ab.Sub(cd)
	} else {
		result = ab.Add(cd)
	}
	if result.coef.Sign() == 0 {
		return result
	}
	return result.WithPrecision(pOut)
}
