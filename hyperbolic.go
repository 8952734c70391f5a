package bigfloat

// Cosh, Sinh, Tanh, Acosh, Asinh and Atanh are all expressed directly in
// terms of Log and Exp, exactly as the real-valued definitions do; unlike
// the circular trigonometric case, no separate series engine is needed
// here.

// Cosh returns cosh(x) = (e^x + e^-x)/2, rounded to targetPrecision digits.
func Cosh(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	workingPrecision := extendPrecision(targetPrecision)
	ex, err := Exp(x, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	enx, err := Exp(x.Neg(), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	sum, err := ex.Add(enx).QuoPrecision(NewInt(2, radix), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return sum.WithPrecision(targetPrecision), nil
}

// Sinh returns sinh(x) = (e^x - e^-x)/2, rounded to targetPrecision digits.
func Sinh(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	workingPrecision := extendPrecision(targetPrecision)
	ex, err := Exp(x, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	enx, err := Exp(x.Neg(), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	diff, err := ex.Sub(enx).QuoPrecision(NewInt(2, radix), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return diff.WithPrecision(targetPrecision), nil
}

// Tanh returns sinh(x)/cosh(x), rounded to targetPrecision digits.
func Tanh(x Number, targetPrecision int64) (Number, error) {
	workingPrecision := extendPrecision(targetPrecision)
	sinh, err := Sinh(x, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	cosh, err := Cosh(x, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	result, err := sinh.QuoPrecision(cosh, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// Acosh returns acosh(x) = ln(x + sqrt(x^2-1)) for x >= 1, rounded to
// targetPrecision digits.
func Acosh(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	if x.Cmp(One(radix)) < 0 {
		return Number{}, newArithmeticError("acosh", "argument less than 1")
	}
	workingPrecision := extendPrecision(targetPrecision)
	xw := x.WithPrecision(workingPrecision)
	s, err := Sqrt(xw.Mul(xw).Sub(One(radix)).WithPrecision(workingPrecision))
	if err != nil {
		return Number{}, err
	}
	result, err := Log(xw.Add(s), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// Asinh returns asinh(x) = ln(x + sqrt(x^2+1)), rounded to targetPrecision
// digits.
func Asinh(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	workingPrecision := extendPrecision(targetPrecision)
	xw := x.WithPrecision(workingPrecision)
	s, err := Sqrt(xw.Mul(xw).Add(One(radix)).WithPrecision(workingPrecision))
	if err != nil {
		return Number{}, err
	}
	result, err := Log(xw.Add(s), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}

// Atanh returns atanh(x) = 0.5*ln((1+x)/(1-x)) for |x| < 1, rounded to
// targetPrecision digits.
func Atanh(x Number, targetPrecision int64) (Number, error) {
	radix := x.radix
	one := One(radix)
	if x.Abs().Cmp(one) >= 0 {
		return Number{}, newArithmeticError("atanh", "argument outside (-1,1)")
	}
	workingPrecision := extendPrecision(targetPrecision)
	xw := x.WithPrecision(workingPrecision)
	ratio, err := one.Add(xw).QuoPrecision(one.Sub(xw), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	lnRatio, err := Log(ratio, workingPrecision)
	if err != nil {
		return Number{}, err
	}
	result, err := lnRatio.QuoPrecision(NewInt(2, radix), workingPrecision)
	if err != nil {
		return Number{}, err
	}
	return result.WithPrecision(targetPrecision), nil
}
